package domain

type Booking struct {
	ID            string   `json:"id"`
	PassengerName string   `json:"passenger_name"`
	SeatTier      SeatTier `json:"seat_tier"`
	Quantity      int      `json:"quantity"`
	Fare          float64  `json:"fare"`
	TrainID       string   `json:"train_id"`
	StaffID       string   `json:"staff_id"`
}

func (b Booking) GetID() string { return b.ID }

type CreateBookingInput struct {
	TrainID   string
	Passenger Passenger
	SeatTier  SeatTier
	Quantity  int
	StaffID   string
}
