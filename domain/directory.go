package domain

import (
	"log/slog"
	"slices"
	"sync"

	"presence-lab/errors"
)

// Directory is the sole authority resolving names to Participant and Group
// instances. No component may fabricate an entity reference except through
// it. A single mutex serializes every mutating operation in the directory,
// reproducing the one-logical-actor model the protocol assumes: partially
// interleaved mutations of the contact or membership relations are not
// defined and must not happen.
type Directory struct {
	mu  sync.Mutex
	log *slog.Logger

	participants map[string]*Participant
	groups       map[string]*Group
}

func NewDirectory(log *slog.Logger) *Directory {
	return &Directory{
		log:          log,
		participants: make(map[string]*Participant),
		groups:       make(map[string]*Group),
	}
}

// CreateParticipant registers a new participant. A name collision is a silent
// no-op: the existing entity is returned and created is false. Callers must
// not assume a fresh object is always produced.
func (d *Directory) CreateParticipant(name string) (*Participant, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if existing, ok := d.participants[name]; ok {
		return existing, false
	}
	d.log.Info("created participant", "name", name)
	p := newParticipant(d, name)
	d.participants[name] = p
	return p, true
}

// Participant resolves an existing participant by name.
func (d *Directory) Participant(name string) (*Participant, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	p, ok := d.participants[name]
	if !ok {
		return nil, errors.UserNonexistantError{Name: name}
	}
	return p, nil
}

// Group resolves a group by name, creating it with seeded metadata on first
// request.
func (d *Directory) Group(name string) *Group {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.group(name)
}

func (d *Directory) group(name string) *Group {
	g, ok := d.groups[name]
	if !ok {
		g = newGroup(d, name)
		d.groups[name] = g
	}
	return g
}

// ParticipantSnapshot is the durable portion of a participant: identity,
// profile text, and the contact edges. Presence status, the live session,
// and group memberships are session state and never survive a snapshot.
type ParticipantSnapshot struct {
	Name     string
	Info     string
	Contacts []string
}

// Snapshot extracts the durable state of one participant.
func (p *Participant) Snapshot() ParticipantSnapshot {
	p.dir.mu.Lock()
	defer p.dir.mu.Unlock()
	return ParticipantSnapshot{
		Name:     p.name,
		Info:     p.info,
		Contacts: slices.Clone(p.contacts),
	}
}

// Restore rebuilds the directory population from snapshots. Every restored
// participant comes back Offline with no session and no groups; reverse
// contact edges are derived from the loaded contact lists. Edges pointing at
// names absent from the snapshot set are dropped with a warning.
func (d *Directory) Restore(snapshots []ParticipantSnapshot) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, snap := range snapshots {
		if _, ok := d.participants[snap.Name]; ok {
			continue
		}
		p := newParticipant(d, snap.Name)
		p.info = snap.Info
		d.participants[snap.Name] = p
	}
	for _, snap := range snapshots {
		p := d.participants[snap.Name]
		for _, contactName := range snap.Contacts {
			contact, ok := d.participants[contactName]
			if !ok {
				d.log.Warn("dropping contact edge to unknown participant",
					"participant", snap.Name, "contact", contactName)
				continue
			}
			p.contacts = append(p.contacts, contactName)
			contact.reverseContacts = append(contact.reverseContacts, p.name)
		}
	}
	d.log.Info("directory restored", "participants", len(d.participants))
}
