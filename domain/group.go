package domain

import (
	"fmt"
	"slices"

	"presence-lab/errors"
)

// Group is a named set of participants sharing metadata and broadcast
// messaging. Member order is join order and is observable through join and
// leave notifications. Groups are created lazily by the Directory and never
// removed; membership is session-scoped and not persisted.
type Group struct {
	dir      *Directory
	name     string
	members  []string
	metadata map[string]string
}

func newGroup(dir *Directory, name string) *Group {
	return &Group{
		dir:  dir,
		name: name,
		metadata: map[string]string{
			"topic":        fmt.Sprintf("Welcome to %s!", name),
			"topic_author": "admin",
		},
	}
}

func (g *Group) Name() string { return g.name }

func (g *Group) Members() []string {
	g.dir.mu.Lock()
	defer g.dir.mu.Unlock()
	return slices.Clone(g.members)
}

func (g *Group) Metadata() map[string]string {
	g.dir.mu.Lock()
	defer g.dir.mu.Unlock()
	return cloneMetadata(g.metadata)
}

// addMember records a join. Existing members hear about the join before the
// newcomer is visible in the member set, and the newcomer receives the
// metadata snapshot before being recorded. Idempotent.
func (g *Group) addMember(p *Participant) {
	if slices.Contains(g.members, p.name) {
		return
	}
	for _, name := range g.members {
		if member, ok := g.dir.participants[name]; ok {
			member.memberJoined(p, g)
		}
	}
	p.setGroupMetadata(cloneMetadata(g.metadata), g.name)
	g.members = append(g.members, p.name)
}

// removeMember drops a member and tells everyone still present.
func (g *Group) removeMember(p *Participant) error {
	idx := slices.Index(g.members, p.name)
	if idx < 0 {
		return errors.NotInGroupError{Group: g.name, Participant: p.name}
	}
	g.members = slices.Delete(g.members, idx, idx+1)
	for _, name := range g.members {
		if member, ok := g.dir.participants[name]; ok {
			member.memberLeft(p, g)
		}
	}
	return nil
}

// sendMessage fans the message out to every current member. Self-exclusion
// and the metadata fallback are handled per member.
func (g *Group) sendMessage(sender *Participant, message string, metadata Metadata) {
	for _, name := range g.members {
		if member, ok := g.dir.participants[name]; ok {
			member.receiveGroupMessage(sender, g, message, metadata)
		}
	}
}

// SetMetadata merges the partial update into the group metadata and pushes
// the update itself, not the merged map, to every member.
func (g *Group) SetMetadata(update map[string]string) {
	g.dir.mu.Lock()
	defer g.dir.mu.Unlock()

	for k, v := range update {
		g.metadata[k] = v
	}
	for _, name := range g.members {
		if member, ok := g.dir.participants[name]; ok {
			member.setGroupMetadata(update, g.name)
		}
	}
}
