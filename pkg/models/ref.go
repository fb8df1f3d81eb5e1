package models

import (
	"encoding/json"
	"fmt"
)

// Ref is a reference to another record. The gateway is inconsistent about how
// it serializes references: depending on the endpoint the same field arrives as
// a plain id string or as a populated object ({"_id": ..., "name": ...}).
// Ref accepts both shapes on decode and always serializes back as the id, so
// the rest of the client only ever deals with one canonical form.
type Ref struct {
	ID   string
	Name string
}

type refObject struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	GymName string `json:"gymName"`
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = Ref{}
		return nil
	}

	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		*r = Ref{ID: id}
		return nil
	}

	var obj refObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("reference is neither an id nor an object: %w", err)
	}

	name := obj.Name
	if name == "" {
		name = obj.GymName
	}
	*r = Ref{ID: obj.ID, Name: name}
	return nil
}

func (r Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ID)
}

func (r Ref) String() string {
	if r.Name != "" {
		return r.Name
	}
	return r.ID
}
