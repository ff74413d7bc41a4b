package announcement

import (
	"context"
	"recipebox/domain"
	"recipebox/entities"
	"recipebox/internal/metrics"
	"strings"

	"github.com/google/uuid"
)

type (
	AnnouncementService interface {
		PostAnnouncement(ctx context.Context, req domain.AnnouncementRequest, userID string) error
		GetLatestAnnouncements(ctx context.Context) ([]domain.Announcement, error)
	}

	announcementService struct {
		announcementRepository AnnouncementRepository
	}
)

func NewAnnouncementService(announcementRepository AnnouncementRepository) AnnouncementService {
	return &announcementService{announcementRepository: announcementRepository}
}

func (s *announcementService) PostAnnouncement(ctx context.Context, req domain.AnnouncementRequest, userID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	if err := s.announcementRepository.CreateAnnouncement(ctx, &entities.Announcement{
		UserID:      userUUID,
		Link:        strings.TrimSpace(req.Link),
		Description: req.Content,
	}); err != nil {
		return err
	}

	metrics.AnnouncementsPosted.Inc()
	return nil
}

func (s *announcementService) GetLatestAnnouncements(ctx context.Context) ([]domain.Announcement, error) {
	announcements, err := s.announcementRepository.GetLatestAnnouncements(ctx, domain.AnnouncementListLimit)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Announcement, 0, len(announcements))
	for _, a := range announcements {
		item := domain.Announcement{
			Link:        a.Link,
			Description: a.Description,
			CreatedAt:   a.CreatedAt,
		}
		if a.User != nil {
			item.Username = a.User.Username
		}
		result = append(result, item)
	}
	return result, nil
}
