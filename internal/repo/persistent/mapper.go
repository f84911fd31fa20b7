package persistent

import (
	"grace-media/internal/entity"
	"grace-media/internal/model"
)

func ToSermonEntity(m *model.SermonModel) *entity.Sermon {
	if m == nil {
		return nil
	}

	return &entity.Sermon{
		ID:           m.ID,
		Title:        m.Title,
		Speaker:      m.Speaker,
		Description:  m.Description,
		Duration:     m.Duration,
		DatePreached: m.DatePreached,
		Featured:     m.Featured,
		Status:       entity.Status(m.Status),
		VideoURL:     m.VideoURL,
		ThumbnailURL: m.ThumbnailURL,
		AudioURL:     m.AudioURL,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToSermonModel(e *entity.Sermon) *model.SermonModel {
	if e == nil {
		return nil
	}

	return &model.SermonModel{
		ID:           e.ID,
		Title:        e.Title,
		Speaker:      e.Speaker,
		Description:  e.Description,
		Duration:     e.Duration,
		DatePreached: e.DatePreached,
		Featured:     e.Featured,
		Status:       string(e.Status),
		VideoURL:     e.VideoURL,
		ThumbnailURL: e.ThumbnailURL,
		AudioURL:     e.AudioURL,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToDocumentaryEntity(m *model.DocumentaryModel) *entity.Documentary {
	if m == nil {
		return nil
	}

	return &entity.Documentary{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		Duration:     m.Duration,
		Status:       entity.Status(m.Status),
		VideoURL:     m.VideoURL,
		ThumbnailURL: m.ThumbnailURL,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToDocumentaryModel(e *entity.Documentary) *model.DocumentaryModel {
	if e == nil {
		return nil
	}

	return &model.DocumentaryModel{
		ID:           e.ID,
		Title:        e.Title,
		Description:  e.Description,
		Duration:     e.Duration,
		Status:       string(e.Status),
		VideoURL:     e.VideoURL,
		ThumbnailURL: e.ThumbnailURL,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToPresentationEntity(m *model.PresentationModel) *entity.Presentation {
	if m == nil {
		return nil
	}

	return &entity.Presentation{
		ID:           m.ID,
		Title:        m.Title,
		Type:         entity.PresentationType(m.Type),
		Speaker:      m.Speaker,
		Description:  m.Description,
		Duration:     m.Duration,
		Status:       entity.Status(m.Status),
		VideoURL:     m.VideoURL,
		ThumbnailURL: m.ThumbnailURL,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToPresentationModel(e *entity.Presentation) *model.PresentationModel {
	if e == nil {
		return nil
	}

	return &model.PresentationModel{
		ID:           e.ID,
		Title:        e.Title,
		Type:         string(e.Type),
		Speaker:      e.Speaker,
		Description:  e.Description,
		Duration:     e.Duration,
		Status:       string(e.Status),
		VideoURL:     e.VideoURL,
		ThumbnailURL: e.ThumbnailURL,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToMaterialEntity(m *model.MaterialModel) *entity.Material {
	if m == nil {
		return nil
	}

	return &entity.Material{
		ID:           m.ID,
		Title:        m.Title,
		Type:         entity.MaterialType(m.Type),
		Author:       m.Author,
		Description:  m.Description,
		Status:       entity.Status(m.Status),
		ContentURL:   m.ContentURL,
		ThumbnailURL: m.ThumbnailURL,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToMaterialModel(e *entity.Material) *model.MaterialModel {
	if e == nil {
		return nil
	}

	return &model.MaterialModel{
		ID:           e.ID,
		Title:        e.Title,
		Type:         string(e.Type),
		Author:       e.Author,
		Description:  e.Description,
		Status:       string(e.Status),
		ContentURL:   e.ContentURL,
		ThumbnailURL: e.ThumbnailURL,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToCommunityPostEntity(m *model.CommunityPostModel) *entity.CommunityPost {
	if m == nil {
		return nil
	}

	post := &entity.CommunityPost{
		ID:        m.ID,
		UserID:    m.UserID,
		Content:   m.Content,
		ImageURL:  m.ImageURL,
		Status:    entity.PostStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.GroupID != nil {
		post.GroupID = *m.GroupID
	}
	return post
}

func ToCommunityPostModel(e *entity.CommunityPost) *model.CommunityPostModel {
	if e == nil {
		return nil
	}

	post := &model.CommunityPostModel{
		ID:        e.ID,
		UserID:    e.UserID,
		Content:   e.Content,
		ImageURL:  e.ImageURL,
		Status:    string(e.Status),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
	if e.GroupID != "" {
		groupID := e.GroupID
		post.GroupID = &groupID
	}
	return post
}

func ToCommunityGroupEntity(m *model.CommunityGroupModel) *entity.CommunityGroup {
	if m == nil {
		return nil
	}

	return &entity.CommunityGroup{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		ImageURL:    m.ImageURL,
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToCommunityGroupModel(e *entity.CommunityGroup) *model.CommunityGroupModel {
	if e == nil {
		return nil
	}

	return &model.CommunityGroupModel{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		ImageURL:    e.ImageURL,
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToUserProfileEntity(m *model.UserProfileModel) *entity.UserProfile {
	if m == nil {
		return nil
	}

	return &entity.UserProfile{
		ID:        m.ID,
		Email:     m.Email,
		FullName:  m.FullName,
		Phone:     m.Phone,
		Bio:       m.Bio,
		AvatarURL: m.AvatarURL,
		Role:      entity.Role(m.Role),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
