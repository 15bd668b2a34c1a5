package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Record is implemented by every stored entity; the repository assigns the id and creation time.
type Record interface {
	SetMeta(id string, now time.Time)
}

func setIf[T any](set bson.M, key string, v *T) {
	if v != nil {
		set[key] = *v
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
