//go:generate go run go.uber.org/mock/mockgen -source=session_service.go -destination=../mocks/mock_session_service.go -package=mocks
package services

import (
	"log/slog"

	"presence-lab/auth"
	"presence-lab/domain"
	"presence-lab/errors"
	"presence-lab/moderation"
	"presence-lab/repositories"
)

// ISessionService is the operation surface the transport layer calls into.
// It wraps the directory protocol with account handling, message moderation,
// and persistence of the social graph; the domain itself stays storage-free.
type ISessionService interface {
	Register(name, password string) error
	Login(name, password string) (string, error)
	Attach(token string, client domain.ClientSession) (*domain.Participant, error)
	Detach(p *domain.Participant)

	ChangeStatus(p *domain.Participant, status domain.Status)
	AddContact(p *domain.Participant, contactName string) error
	RemoveContact(p *domain.Participant, contactName string) error
	JoinGroup(p *domain.Participant, groupName string) error
	LeaveGroup(p *domain.Participant, groupName string) error
	GroupMembers(p *domain.Participant, groupName string) error
	GroupMetadata(p *domain.Participant, groupName string)
	SetGroupMetadata(groupName string, update map[string]string)
	UpdateInfo(p *domain.Participant, info string) error
	DirectMessage(p *domain.Participant, recipientName, message string, metadata domain.Metadata) error
	GroupMessage(p *domain.Participant, groupName, message string, metadata domain.Metadata) error
}

type SessionService struct {
	log          *slog.Logger
	directory    *domain.Directory
	participants repositories.IParticipantRepository
	credentials  repositories.ICredentialRepository
	tokens       auth.TokenManager
	moderator    *moderation.Moderator
}

func NewSessionService(
	log *slog.Logger,
	directory *domain.Directory,
	participants repositories.IParticipantRepository,
	credentials repositories.ICredentialRepository,
	tokens auth.TokenManager,
	moderator *moderation.Moderator,
) *SessionService {
	return &SessionService{
		log:          log,
		directory:    directory,
		participants: participants,
		credentials:  credentials,
		tokens:       tokens,
		moderator:    moderator,
	}
}

// Register creates the account and its directory entry. Name collisions on
// the directory side are silent; only a duplicate credential is an error.
func (s *SessionService) Register(name, password string) error {
	_, found, err := s.credentials.Get(name)
	if err != nil {
		return err
	}
	if found {
		return errors.ErrAccountExists
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	if err := s.credentials.Store(name, hash); err != nil {
		return err
	}
	p, _ := s.directory.CreateParticipant(name)
	return s.participants.Store(toDiskParticipant(p.Snapshot()))
}

// Login verifies the password and issues a session token. The token is what
// a subsequent Attach exchanges for the live session binding.
func (s *SessionService) Login(name, password string) (string, error) {
	hash, found, err := s.credentials.Get(name)
	if err != nil {
		return "", err
	}
	if !found {
		return "", errors.ErrBadCredentials
	}
	ok, err := auth.ComparePassword(password, hash)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errors.ErrBadCredentials
	}
	return s.tokens.Generate(name)
}

// Attach exchanges a valid token for the participant, binding the client
// session to it. The duplicate-login guard lives in the domain.
func (s *SessionService) Attach(token string, client domain.ClientSession) (*domain.Participant, error) {
	name, err := s.tokens.Validate(token)
	if err != nil {
		return nil, errors.AuthorizationError{Reason: "invalid session token"}
	}
	p, err := s.directory.Participant(name)
	if err != nil {
		return nil, err
	}
	return p.Attach(client)
}

func (s *SessionService) Detach(p *domain.Participant) {
	p.Detach()
}

func (s *SessionService) ChangeStatus(p *domain.Participant, status domain.Status) {
	p.ChangeStatus(status)
}

func (s *SessionService) AddContact(p *domain.Participant, contactName string) error {
	if err := p.AddContact(contactName); err != nil {
		return err
	}
	return s.participants.Store(toDiskParticipant(p.Snapshot()))
}

func (s *SessionService) RemoveContact(p *domain.Participant, contactName string) error {
	if err := p.RemoveContact(contactName); err != nil {
		return err
	}
	return s.participants.Store(toDiskParticipant(p.Snapshot()))
}

func (s *SessionService) JoinGroup(p *domain.Participant, groupName string) error {
	return p.JoinGroup(groupName)
}

func (s *SessionService) LeaveGroup(p *domain.Participant, groupName string) error {
	return p.LeaveGroup(groupName)
}

func (s *SessionService) GroupMembers(p *domain.Participant, groupName string) error {
	return p.GroupMembers(groupName)
}

func (s *SessionService) GroupMetadata(p *domain.Participant, groupName string) {
	p.GroupMetadata(groupName)
}

func (s *SessionService) SetGroupMetadata(groupName string, update map[string]string) {
	s.directory.Group(groupName).SetMetadata(update)
}

func (s *SessionService) UpdateInfo(p *domain.Participant, info string) error {
	p.UpdateInfo(info)
	return s.participants.Store(toDiskParticipant(p.Snapshot()))
}

func (s *SessionService) DirectMessage(p *domain.Participant, recipientName, message string, metadata domain.Metadata) error {
	return p.DirectMessage(recipientName, s.moderator.Censor(message), metadata)
}

func (s *SessionService) GroupMessage(p *domain.Participant, groupName, message string, metadata domain.Metadata) error {
	return p.GroupMessage(groupName, s.moderator.Censor(message), metadata)
}

// RestoreDirectory loads every persisted record into the directory. Called
// once at boot, before the gateway accepts sessions.
func (s *SessionService) RestoreDirectory() error {
	records, err := s.participants.Load()
	if err != nil {
		return err
	}
	snapshots := make([]domain.ParticipantSnapshot, 0, len(records))
	for _, record := range records {
		snapshots = append(snapshots, domain.ParticipantSnapshot{
			Name:     record.Name,
			Info:     record.Info,
			Contacts: record.Contacts,
		})
	}
	s.directory.Restore(snapshots)
	return nil
}

func toDiskParticipant(snap domain.ParticipantSnapshot) repositories.DiskParticipant {
	return repositories.DiskParticipant{
		Name:     snap.Name,
		Info:     snap.Info,
		Contacts: snap.Contacts,
	}
}
