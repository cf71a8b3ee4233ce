package persistent

import (
	"openshelf/internal/entity"
	"openshelf/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:          m.ID,
		Email:       m.Email,
		FullName:    m.FullName,
		Password:    m.Password,
		Role:        entity.UserRole(m.Role),
		MemberSince: m.MemberSince,
		AppointedAt: m.AppointedAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:          e.ID,
		Email:       e.Email,
		FullName:    e.FullName,
		Password:    e.Password,
		Role:        string(e.Role),
		MemberSince: e.MemberSince,
		AppointedAt: e.AppointedAt,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToWorkEntity(m *model.WorkModel) *entity.Work {
	if m == nil {
		return nil
	}

	work := &entity.Work{
		ID:          m.ID,
		Title:       m.Title,
		Author:      m.Author,
		Description: m.Description,
		Type:        entity.WorkType(m.Type),
		FileURL:     m.FileURL,
		Metadata: entity.WorkMetadata{
			ISBN:            m.ISBN,
			PublicationYear: m.PublicationYear,
			Publisher:       m.Publisher,
			FileSize:        m.FileSize,
			CoverURL:        m.CoverURL,
		},
		Status:          entity.WorkStatus(m.Status),
		SubmittedBy:     m.SubmittedBy,
		ApprovedAt:      m.ApprovedAt,
		RejectionReason: m.RejectionReason,
		Views:           m.ViewsCount,
		Downloads:       m.DownloadsCount,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}

	if m.ApprovedBy != nil {
		work.ApprovedBy = *m.ApprovedBy
	}

	return work
}

func ToWorkModel(e *entity.Work) *model.WorkModel {
	if e == nil {
		return nil
	}

	work := &model.WorkModel{
		ID:              e.ID,
		Title:           e.Title,
		Author:          e.Author,
		Description:     e.Description,
		Type:            string(e.Type),
		FileURL:         e.FileURL,
		ISBN:            e.Metadata.ISBN,
		PublicationYear: e.Metadata.PublicationYear,
		Publisher:       e.Metadata.Publisher,
		FileSize:        e.Metadata.FileSize,
		CoverURL:        e.Metadata.CoverURL,
		Status:          string(e.Status),
		SubmittedBy:     e.SubmittedBy,
		ApprovedAt:      e.ApprovedAt,
		RejectionReason: e.RejectionReason,
		ViewsCount:      e.Views,
		DownloadsCount:  e.Downloads,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}

	if e.ApprovedBy != "" {
		approvedBy := e.ApprovedBy
		work.ApprovedBy = &approvedBy
	}

	return work
}

func ToBorrowEntity(m *model.BorrowModel) *entity.Borrow {
	if m == nil {
		return nil
	}

	return &entity.Borrow{
		ID:         m.ID,
		UserID:     m.UserID,
		WorkID:     m.WorkID,
		BorrowedAt: m.BorrowedAt,
		DueDate:    m.DueDate,
		ReturnedAt: m.ReturnedAt,
		IsActive:   m.IsActive,
		CreatedAt:  m.CreatedAt,
	}
}

func ToBorrowModel(e *entity.Borrow) *model.BorrowModel {
	if e == nil {
		return nil
	}

	return &model.BorrowModel{
		ID:         e.ID,
		UserID:     e.UserID,
		WorkID:     e.WorkID,
		BorrowedAt: e.BorrowedAt,
		DueDate:    e.DueDate,
		ReturnedAt: e.ReturnedAt,
		IsActive:   e.IsActive,
		CreatedAt:  e.CreatedAt,
	}
}

func ToFavoriteEntity(m *model.FavoriteModel) *entity.Favorite {
	if m == nil {
		return nil
	}

	return &entity.Favorite{
		ID:        m.ID,
		UserID:    m.UserID,
		WorkID:    m.WorkID,
		CreatedAt: m.CreatedAt,
	}
}

func ToRequestEntity(m *model.LibrarianRequestModel) *entity.LibrarianRequest {
	if m == nil {
		return nil
	}

	req := &entity.LibrarianRequest{
		ID:              m.ID,
		UserID:          m.UserID,
		Motivation:      m.Motivation,
		Status:          entity.RequestStatus(m.Status),
		RequestedAt:     m.RequestedAt,
		ReviewedAt:      m.ReviewedAt,
		RejectionReason: m.RejectionReason,
	}

	if m.ReviewedBy != nil {
		req.ReviewedBy = *m.ReviewedBy
	}

	return req
}

func ToRequestModel(e *entity.LibrarianRequest) *model.LibrarianRequestModel {
	if e == nil {
		return nil
	}

	req := &model.LibrarianRequestModel{
		ID:              e.ID,
		UserID:          e.UserID,
		Motivation:      e.Motivation,
		Status:          string(e.Status),
		RequestedAt:     e.RequestedAt,
		ReviewedAt:      e.ReviewedAt,
		RejectionReason: e.RejectionReason,
	}

	if e.ReviewedBy != "" {
		reviewedBy := e.ReviewedBy
		req.ReviewedBy = &reviewedBy
	}

	return req
}

func ToCategoryEntity(m *model.CategoryModel) *entity.Category {
	if m == nil {
		return nil
	}

	return &entity.Category{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

func ToDownloadEntity(m *model.DownloadModel) *entity.Download {
	if m == nil {
		return nil
	}

	download := &entity.Download{
		ID:           m.ID,
		WorkID:       m.WorkID,
		DownloadedAt: m.DownloadedAt,
	}

	if m.UserID != nil {
		download.UserID = *m.UserID
	}

	return download
}

func ToNotificationEntity(m *model.NotificationModel) *entity.Notification {
	if m == nil {
		return nil
	}

	notification := &entity.Notification{
		ID:        m.ID,
		UserID:    m.UserID,
		Title:     m.Title,
		Message:   m.Message,
		Type:      m.Type,
		Read:      m.Read,
		CreatedAt: m.CreatedAt,
	}

	if m.RelatedWorkID != nil {
		notification.RelatedWorkID = *m.RelatedWorkID
	}

	return notification
}
