package announcement

import (
	"context"
	"recipebox/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	AnnouncementRepository interface {
		CreateAnnouncement(ctx context.Context, announcement *entities.Announcement) error
		GetLatestAnnouncements(ctx context.Context, limit int) ([]*entities.Announcement, error)
	}

	announcementRepository struct {
		db *gorm.DB
	}
)

func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &announcementRepository{db: db}
}

func (r *announcementRepository) CreateAnnouncement(ctx context.Context, announcement *entities.Announcement) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(announcement).Error
}

func (r *announcementRepository) GetLatestAnnouncements(ctx context.Context, limit int) ([]*entities.Announcement, error) {
	var announcements []*entities.Announcement
	if err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Find(&announcements).Error; err != nil {
		return nil, err
	}
	return announcements, nil
}
