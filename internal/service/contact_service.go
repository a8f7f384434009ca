package service

import (
	"context"
	"errors"
	"fmt"
	"html"

	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/dto"
	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/model"
	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/repository"
	"github.com/AnthonyDeveloper1/jose-abelardo-quinones-gonzales/internal/worker"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// EmailEnqueuer lets tests stub out the redis-backed dispatcher.
type EmailEnqueuer interface {
	EnqueueEmail(ctx context.Context, payload worker.EmailJob) error
}

// ContactService persists contact-form submissions and notifies the admin
// recipients by email. The notification is fire-and-forget: an enqueue
// failure is logged and the submission still succeeds.
type ContactService interface {
	Submit(ctx context.Context, req dto.CreateContactRequest) (dto.ContactMessageResponse, error)
	ListMessages(ctx context.Context) ([]dto.ContactMessageResponse, error)
	MarkRead(ctx context.Context, id uint) error
	ListSubjects(ctx context.Context) ([]dto.ContactSubjectResponse, error)
}

type contactService struct {
	repo       repository.ContactRepository
	dispatcher EmailEnqueuer
	recipients []string
}

func NewContactService(repo repository.ContactRepository, dispatcher EmailEnqueuer, recipients []string) ContactService {
	return &contactService{repo: repo, dispatcher: dispatcher, recipients: recipients}
}

func (s *contactService) Submit(ctx context.Context, req dto.CreateContactRequest) (dto.ContactMessageResponse, error) {
	m := &model.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := s.repo.CreateMessage(ctx, m); err != nil {
		return dto.ContactMessageResponse{}, err
	}

	if len(s.recipients) > 0 {
		job := worker.EmailJob{
			To:      s.recipients,
			Subject: "Nuevo mensaje de contacto: " + req.Subject,
			HTML:    contactNotificationHTML(m),
		}
		if err := s.dispatcher.EnqueueEmail(ctx, job); err != nil {
			log.Error().Err(err).Uint("message_id", m.ID).Msg("failed to enqueue contact notification")
		}
	}
	return dto.MapContactMessage(m), nil
}

func (s *contactService) ListMessages(ctx context.Context) ([]dto.ContactMessageResponse, error) {
	msgs, err := s.repo.ListMessages(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ContactMessageResponse, 0, len(msgs))
	for i := range msgs {
		result = append(result, dto.MapContactMessage(&msgs[i]))
	}
	return result, nil
}

func (s *contactService) MarkRead(ctx context.Context, id uint) error {
	if _, err := s.repo.FindMessageByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.repo.MarkRead(ctx, id)
}

func (s *contactService) ListSubjects(ctx context.Context) ([]dto.ContactSubjectResponse, error) {
	subjects, err := s.repo.ListSubjects(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ContactSubjectResponse, 0, len(subjects))
	for _, sub := range subjects {
		result = append(result, dto.ContactSubjectResponse{ID: sub.ID, Nombre: sub.Name})
	}
	return result, nil
}

func contactNotificationHTML(m *model.ContactMessage) string {
	return fmt.Sprintf(
		`<h2>Nuevo mensaje de contacto</h2>
<p><strong>Nombre:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Asunto:</strong> %s</p>
<p>%s</p>`,
		html.EscapeString(m.Name),
		html.EscapeString(m.Email),
		html.EscapeString(m.Subject),
		html.EscapeString(m.Message),
	)
}
