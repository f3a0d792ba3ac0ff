package service

type identified interface {
	GetID() string
}

func indexByID[T identified](items []T, id string) int {
	for i := range items {
		if items[i].GetID() == id {
			return i
		}
	}
	return -1
}

// replaceAt returns a copy of items with position i set to v.
func replaceAt[T any](items []T, i int, v T) []T {
	res := make([]T, len(items))
	copy(res, items)
	res[i] = v
	return res
}
