package persistent

import (
	"time"

	"openshelf/internal/entity"
	"openshelf/internal/model"

	"gorm.io/gorm"
)

type LibrarianRequestRepository interface {
	Create(request *entity.LibrarianRequest) error
	GetByID(id string) (*entity.LibrarianRequest, error)
	GetLatestByUser(userID string) (*entity.LibrarianRequest, error)
	HasPending(userID string) (bool, error)
	ListPending() ([]*entity.LibrarianRequest, error)
	ListAll(status entity.RequestStatus) ([]*entity.LibrarianRequest, error)
	// ApproveAndPromote persists the approved request and the requester's
	// role promotion in a single transaction.
	ApproveAndPromote(request *entity.LibrarianRequest, requester *entity.User) error
	Update(request *entity.LibrarianRequest) error
	DeletePending(requestID, userID string) (int64, error)
}

type librarianRequestRepository struct {
	db *gorm.DB
}

func NewLibrarianRequestRepository(db *gorm.DB) LibrarianRequestRepository {
	return &librarianRequestRepository{db: db}
}

func (r *librarianRequestRepository) Create(request *entity.LibrarianRequest) error {
	requestModel := ToRequestModel(request)
	if requestModel.RequestedAt.IsZero() {
		requestModel.RequestedAt = time.Now()
	}
	if err := r.db.Create(requestModel).Error; err != nil {
		return err
	}
	*request = *ToRequestEntity(requestModel)
	return nil
}

func (r *librarianRequestRepository) GetByID(id string) (*entity.LibrarianRequest, error) {
	var requestModel model.LibrarianRequestModel
	if err := r.db.Where("id = ?", id).First(&requestModel).Error; err != nil {
		return nil, err
	}
	return ToRequestEntity(&requestModel), nil
}

func (r *librarianRequestRepository) GetLatestByUser(userID string) (*entity.LibrarianRequest, error) {
	var requestModel model.LibrarianRequestModel
	err := r.db.Where("user_id = ?", userID).
		Order("requested_at DESC").
		First(&requestModel).Error
	if err != nil {
		return nil, err
	}
	return ToRequestEntity(&requestModel), nil
}

func (r *librarianRequestRepository) HasPending(userID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.LibrarianRequestModel{}).
		Where("user_id = ? AND status = ?", userID, string(entity.RequestPending)).
		Count(&count).Error
	return count > 0, err
}

func (r *librarianRequestRepository) ListPending() ([]*entity.LibrarianRequest, error) {
	var requestModels []model.LibrarianRequestModel
	err := r.db.Where("status = ?", string(entity.RequestPending)).
		Order("requested_at ASC").
		Find(&requestModels).Error
	if err != nil {
		return nil, err
	}
	return toRequestEntities(requestModels), nil
}

func (r *librarianRequestRepository) ListAll(status entity.RequestStatus) ([]*entity.LibrarianRequest, error) {
	query := r.db.Order("requested_at DESC")
	if status != "" {
		query = query.Where("status = ?", string(status))
	}

	var requestModels []model.LibrarianRequestModel
	if err := query.Find(&requestModels).Error; err != nil {
		return nil, err
	}
	return toRequestEntities(requestModels), nil
}

func (r *librarianRequestRepository) ApproveAndPromote(request *entity.LibrarianRequest, requester *entity.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(ToRequestModel(request)).Error; err != nil {
			return err
		}
		return tx.Save(ToUserModel(requester)).Error
	})
}

func (r *librarianRequestRepository) Update(request *entity.LibrarianRequest) error {
	return r.db.Save(ToRequestModel(request)).Error
}

// DeletePending removes a pending request owned by the given user and
// reports how many rows matched.
func (r *librarianRequestRepository) DeletePending(requestID, userID string) (int64, error) {
	result := r.db.Where("id = ? AND user_id = ? AND status = ?",
		requestID, userID, string(entity.RequestPending)).
		Delete(&model.LibrarianRequestModel{})
	return result.RowsAffected, result.Error
}

func toRequestEntities(requestModels []model.LibrarianRequestModel) []*entity.LibrarianRequest {
	requests := make([]*entity.LibrarianRequest, len(requestModels))
	for i := range requestModels {
		requests[i] = ToRequestEntity(&requestModels[i])
	}
	return requests
}
