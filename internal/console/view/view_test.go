package view

import (
	"bytes"
	"testing"
	"time"

	"github.com/changzc22/SM-Assignment-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestTrains(t *testing.T) {
	var buf bytes.Buffer

	Trains(&buf, []domain.Train{{
		ID: "T001", Destination: "Butterworth",
		Departure:       time.Date(2030, 1, 15, 8, 30, 0, 0, time.UTC),
		StandardSeatQty: 10, PremiumSeatQty: 5, StandardPrice: 50, PremiumPrice: 80,
		Status: domain.TrainStatusActive,
	}})

	out := buf.String()
	assert.Contains(t, out, "DESTINATION")
	assert.Contains(t, out, "Butterworth")
	assert.Contains(t, out, "2030-01-15 08:30")
	assert.Contains(t, out, "80.00")
}

func TestEmptyCollections(t *testing.T) {
	var buf bytes.Buffer

	Trains(&buf, nil)
	Bookings(&buf, nil)
	Staff(&buf, nil)

	assert.Equal(t, "no trains\nno bookings\nno staff\n", buf.String())
}

func TestStaff_HidesPasswordHash(t *testing.T) {
	var buf bytes.Buffer

	Staff(&buf, []domain.Staff{{
		ContactInfo:  domain.ContactInfo{Name: "Aina", ContactNo: "012", IC: "900101"},
		ID:           "S001",
		PasswordHash: "$2a$10$secret",
	}})

	assert.Contains(t, buf.String(), "Aina")
	assert.NotContains(t, buf.String(), "secret")
}

func TestMessagesArePlainForNonTerminal(t *testing.T) {
	var buf bytes.Buffer

	OK(&buf, "booking %s created", "B001")
	Error(&buf, "train not found")

	assert.Equal(t, "booking B001 created\nerror: train not found\n", buf.String())
}
