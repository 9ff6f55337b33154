// Package domain contains core concepts of the presence directory.
// It defines Participant and Group entities, the Directory that resolves
// them by name, and the invariants tying them together.
// No runtime, network, or storage logic should be added here.
package domain

import "fmt"

// Status is the presence state of a participant.
type Status int

const (
	Offline Status = iota
	Online
	Away
)

var statusNames = [...]string{"Offline", "Online", "Away"}

func (s Status) String() string {
	if s < Offline || s > Away {
		return fmt.Sprintf("unknown? (%d)", int(s))
	}
	return statusNames[s]
}
