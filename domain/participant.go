package domain

import (
	stderrors "errors"
	"slices"

	"github.com/samber/lo"

	"presence-lab/errors"
)

// Participant is a named identity with presence status, contacts, and group
// memberships. Relations are stored as names and resolved through the owning
// Directory, so entities never hold pointers to each other.
//
// Exported methods take the directory lock; unexported ones expect the caller
// to hold it already. AddContact/RemoveContact are the only writers of the
// contact edge pair and keep both directions symmetric.
type Participant struct {
	dir    *Directory
	name   string
	status Status

	// contacts this participant watches, in insertion order.
	contacts []string
	// reverseContacts holds every participant watching this one; used for
	// status-change fan-out. Derived from contacts, never persisted.
	reverseContacts []string

	// groups in join order. Not persisted: membership dies with the session.
	groups []string

	client ClientSession
	info   string
}

func newParticipant(dir *Directory, name string) *Participant {
	return &Participant{dir: dir, name: name, status: Offline}
}

func (p *Participant) Name() string { return p.name }

func (p *Participant) Status() Status {
	p.dir.mu.Lock()
	defer p.dir.mu.Unlock()
	return p.status
}

func (p *Participant) Info() string {
	p.dir.mu.Lock()
	defer p.dir.mu.Unlock()
	return p.info
}

func (p *Participant) Contacts() []string {
	p.dir.mu.Lock()
	defer p.dir.mu.Unlock()
	return slices.Clone(p.contacts)
}

func (p *Participant) ReverseContacts() []string {
	p.dir.mu.Lock()
	defer p.dir.mu.Unlock()
	return slices.Clone(p.reverseContacts)
}

func (p *Participant) Groups() []string {
	p.dir.mu.Lock()
	defer p.dir.mu.Unlock()
	return slices.Clone(p.groups)
}

// Attach binds a live session to the participant. A second session for the
// same identity is refused unless the current one is a transient Placeholder.
// The new session immediately receives the full contact list with current
// statuses, then every watcher is told the participant came online.
func (p *Participant) Attach(client ClientSession) (*Participant, error) {
	p.dir.mu.Lock()
	defer p.dir.mu.Unlock()

	if p.client != nil {
		if _, transient := p.client.(Placeholder); !transient {
			return nil, errors.AuthorizationError{Reason: "duplicate login not permitted"}
		}
	}
	p.dir.log.Info("attached", "participant", p.name)
	p.client = client

	pairs := lo.Map(p.contacts, func(name string, _ int) ContactStatus {
		contact := p.dir.participants[name]
		return ContactStatus{Name: contact.name, Status: contact.status}
	})
	if err := client.ReceiveContactList(pairs); err != nil {
		p.dir.log.Debug("contact list push failed", "participant", p.name, "err", err)
	}
	p.changeStatus(Online)
	return p, nil
}

// Detach clears the session, leaves every group, and goes offline. Group
// cleanup is fault-tolerant: bookkeeping that is already consistent must not
// make detach fail.
func (p *Participant) Detach() {
	p.dir.mu.Lock()
	defer p.dir.mu.Unlock()

	p.dir.log.Info("detached", "participant", p.name)
	p.client = nil
	for _, name := range slices.Clone(p.groups) {
		if err := p.leaveGroup(name); err != nil {
			var notIn errors.NotInGroupError
			if !stderrors.As(err, &notIn) {
				p.dir.log.Warn("group cleanup failed", "participant", p.name, "group", name, "err", err)
			}
		}
	}
	p.changeStatus(Offline)
}

// ChangeStatus sets the status unconditionally and notifies every watcher.
// There is deliberately no requirement that a session be attached: a detached
// participant may be toggled to Away or Online.
func (p *Participant) ChangeStatus(status Status) {
	p.dir.mu.Lock()
	defer p.dir.mu.Unlock()
	p.changeStatus(status)
}

func (p *Participant) changeStatus(status Status) {
	p.status = status
	for _, name := range p.reverseContacts {
		if watcher, ok := p.dir.participants[name]; ok {
			watcher.notifyStatusChanged(p)
		}
	}
}

func (p *Participant) notifyStatusChanged(contact *Participant) {
	if p.client == nil {
		return
	}
	if err := p.client.NotifyStatusChanged(contact.name, contact.status); err != nil {
		p.dir.log.Debug("status push failed", "participant", p.name, "contact", contact.name, "err", err)
	}
}

// AddContact starts watching contactName and records the reverse edge on the
// target, then tells this participant the target's current status. Duplicate
// insertions are not rejected here; callers are expected to not repeat
// themselves.
func (p *Participant) AddContact(contactName string) error {
	p.dir.mu.Lock()
	defer p.dir.mu.Unlock()

	contact, ok := p.dir.participants[contactName]
	if !ok {
		return errors.UserNonexistantError{Name: contactName}
	}
	p.contacts = append(p.contacts, contact.name)
	contact.reverseContacts = append(contact.reverseContacts, p.name)
	p.notifyStatusChanged(contact)
	return nil
}

// RemoveContact drops both directions of the contact edge.
func (p *Participant) RemoveContact(contactName string) error {
	p.dir.mu.Lock()
	defer p.dir.mu.Unlock()

	idx := slices.Index(p.contacts, contactName)
	if idx < 0 {
		return errors.NotInCollectionError{Contact: contactName}
	}
	p.contacts = slices.Delete(p.contacts, idx, idx+1)
	if contact, ok := p.dir.participants[contactName]; ok {
		if rev := slices.Index(contact.reverseContacts, p.name); rev >= 0 {
			contact.reverseContacts = slices.Delete(contact.reverseContacts, rev, rev+1)
		}
	}
	return nil
}

// JoinGroup resolves (creating on demand) the group and joins it. Joining a
// group the participant is already in is a silent no-op.
func (p *Participant) JoinGroup(groupName string) error {
	p.dir.mu.Lock()
	defer p.dir.mu.Unlock()

	group := p.dir.group(groupName)
	if slices.Contains(p.groups, groupName) {
		return nil
	}
	group.addMember(p)
	p.groups = append(p.groups, groupName)
	return nil
}

func (p *Participant) LeaveGroup(groupName string) error {
	p.dir.mu.Lock()
	defer p.dir.mu.Unlock()
	return p.leaveGroup(groupName)
}

func (p *Participant) leaveGroup(groupName string) error {
	idx := slices.Index(p.groups, groupName)
	if idx < 0 {
		return errors.NotInGroupError{Group: groupName}
	}
	p.groups = slices.Delete(p.groups, idx, idx+1)
	return p.dir.group(groupName).removeMember(p)
}

// GroupMembers pushes the member-name list of a group the participant belongs
// to through the attached session, then returns. The historical behavior
// raised the membership error even after a successful push; that was a missing
// early return and is not reproduced.
func (p *Participant) GroupMembers(groupName string) error {
	p.dir.mu.Lock()
	defer p.dir.mu.Unlock()

	if !slices.Contains(p.groups, groupName) {
		return errors.NotInGroupError{Group: groupName}
	}
	group := p.dir.group(groupName)
	if p.client != nil {
		if err := p.client.ReceiveGroupMembers(slices.Clone(group.members), group.name); err != nil {
			p.dir.log.Debug("member list push failed", "participant", p.name, "group", group.name, "err", err)
		}
	}
	return nil
}

// GroupMetadata pushes the metadata map of a group the participant belongs
// to. Not being a member is a silent no-op.
func (p *Participant) GroupMetadata(groupName string) {
	p.dir.mu.Lock()
	defer p.dir.mu.Unlock()

	if !slices.Contains(p.groups, groupName) {
		return
	}
	group := p.dir.group(groupName)
	p.setGroupMetadata(cloneMetadata(group.metadata), group.name)
}

// UpdateInfo replaces the persisted free-text profile field.
func (p *Participant) UpdateInfo(info string) {
	p.dir.mu.Lock()
	defer p.dir.mu.Unlock()
	p.info = info
}

// DirectMessage resolves the recipient and delivers to it.
func (p *Participant) DirectMessage(recipientName, message string, metadata Metadata) error {
	p.dir.mu.Lock()
	defer p.dir.mu.Unlock()

	recipient, ok := p.dir.participants[recipientName]
	if !ok {
		return errors.UserNonexistantError{Name: recipientName}
	}
	return recipient.receiveDirectMessage(p, message, metadata)
}

// GroupMessage broadcasts to a group the participant belongs to.
func (p *Participant) GroupMessage(groupName, message string, metadata Metadata) error {
	p.dir.mu.Lock()
	defer p.dir.mu.Unlock()

	if !slices.Contains(p.groups, groupName) {
		return errors.NotInGroupError{Group: groupName}
	}
	p.dir.group(groupName).sendMessage(p, message, metadata)
	return nil
}

// receiveDirectMessage delivers through the attached session. With non-empty
// metadata the push is attempted once with attributes; a capability refusal
// triggers exactly one retry of the identical message without them. No other
// delivery to this participant can interleave between attempt and retry since
// the directory lock is held across both.
func (p *Participant) receiveDirectMessage(sender *Participant, message string, metadata Metadata) error {
	if p.client == nil {
		return errors.WrongStatusError{Status: p.status.String(), Name: p.name}
	}
	if len(metadata) > 0 {
		err := p.client.ReceiveDirectMessage(sender.name, message, metadata)
		if stderrors.Is(err, errors.ErrMetadataUnsupported) {
			return p.client.ReceiveDirectMessage(sender.name, message, nil)
		}
		return err
	}
	return p.client.ReceiveDirectMessage(sender.name, message, nil)
}

// receiveGroupMessage applies the same metadata fallback as the direct path,
// but never echoes to the sender and treats a missing session as a silent
// no-op rather than an error. That asymmetry is part of the contract.
func (p *Participant) receiveGroupMessage(sender *Participant, group *Group, message string, metadata Metadata) {
	if sender == p || p.client == nil {
		return
	}
	var err error
	if len(metadata) > 0 {
		err = p.client.ReceiveGroupMessage(sender.name, group.name, message, metadata)
		if stderrors.Is(err, errors.ErrMetadataUnsupported) {
			err = p.client.ReceiveGroupMessage(sender.name, group.name, message, nil)
		}
	} else {
		err = p.client.ReceiveGroupMessage(sender.name, group.name, message, nil)
	}
	if err != nil {
		p.dir.log.Debug("group message push failed", "participant", p.name, "group", group.name, "err", err)
	}
}

func (p *Participant) memberJoined(member *Participant, group *Group) {
	if p.client == nil {
		return
	}
	if err := p.client.MemberJoined(member.name, group.name); err != nil {
		p.dir.log.Debug("member joined push failed", "participant", p.name, "err", err)
	}
}

func (p *Participant) memberLeft(member *Participant, group *Group) {
	if p.client == nil {
		return
	}
	if err := p.client.MemberLeft(member.name, group.name); err != nil {
		p.dir.log.Debug("member left push failed", "participant", p.name, "err", err)
	}
}

func (p *Participant) setGroupMetadata(metadata map[string]string, groupName string) {
	if p.client == nil {
		return
	}
	if err := p.client.SetGroupMetadata(metadata, groupName); err != nil {
		p.dir.log.Debug("metadata push failed", "participant", p.name, "group", groupName, "err", err)
	}
}

func cloneMetadata(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
