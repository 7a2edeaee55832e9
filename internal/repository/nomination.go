package repository

import (
	"errors"
	"time"

	"rewards-recognition-backend/internal/database/models"
	apperrors "rewards-recognition-backend/internal/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolation is the Postgres error code raised when the composite
// approver/nomination index rejects a second ledger entry.
const uniqueViolation = "23505"

// NominationRepository handles database operations for nominations
type NominationRepository struct {
	db *gorm.DB
}

// NewNominationRepository creates a new nomination repository
func NewNominationRepository(db *gorm.DB) *NominationRepository {
	return &NominationRepository{db: db}
}

// Create creates a new nomination
func (r *NominationRepository) Create(nomination *models.Nomination) error {
	return r.db.Create(nomination).Error
}

// GetByID retrieves a nomination with its full relationship graph
func (r *NominationRepository) GetByID(id uuid.UUID) (*models.Nomination, error) {
	var nomination models.Nomination
	err := r.db.
		Preload("Nominator").
		Preload("Nominee").
		Preload("Nominee.Team").
		Preload("Category").
		Preload("YearQuarter").
		Preload("Approvals").
		Preload("Approvals.Approver").
		First(&nomination, "id = ? AND is_deleted = false", id).Error
	if err != nil {
		return nil, err
	}
	return &nomination, nil
}

// GetAll retrieves all nominations with pagination
func (r *NominationRepository) GetAll(limit, offset int) ([]models.Nomination, int64, error) {
	var nominations []models.Nomination
	var total int64

	if err := r.db.Model(&models.Nomination{}).Where("is_deleted = false").Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.withGraph().
		Where("is_deleted = false").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&nominations).Error
	if err != nil {
		return nil, 0, err
	}

	return nominations, total, nil
}

// Update updates a nomination
func (r *NominationRepository) Update(nomination *models.Nomination) error {
	return r.db.Save(nomination).Error
}

// SoftDelete marks a nomination as deleted without removing its ledger history
func (r *NominationRepository) SoftDelete(id uuid.UUID) error {
	result := r.db.Model(&models.Nomination{}).
		Where("id = ? AND is_deleted = false", id).
		Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetByNominator retrieves non-draft nominations authored by a user
func (r *NominationRepository) GetByNominator(nominatorID uuid.UUID) ([]models.Nomination, error) {
	var nominations []models.Nomination
	err := r.withGraph().
		Where("nominator_id = ? AND status <> ? AND is_deleted = false", nominatorID, models.StatusDraft).
		Order("created_at DESC").
		Find(&nominations).Error
	return nominations, err
}

// GetForNominee retrieves non-draft nominations naming a user as nominee
func (r *NominationRepository) GetForNominee(nomineeID uuid.UUID) ([]models.Nomination, error) {
	var nominations []models.Nomination
	err := r.withGraph().
		Where("nominee_id = ? AND status <> ? AND is_deleted = false", nomineeID, models.StatusDraft).
		Order("created_at DESC").
		Find(&nominations).Error
	return nominations, err
}

// GetByTeam retrieves nominations whose nominee belongs to the given team
func (r *NominationRepository) GetByTeam(teamID uuid.UUID) ([]models.Nomination, error) {
	var nominations []models.Nomination
	err := r.withGraph().
		Joins("JOIN users nominees ON nominations.nominee_id = nominees.id").
		Where("nominees.team_id = ? AND nominations.status <> ? AND nominations.is_deleted = false", teamID, models.StatusDraft).
		Order("nominations.created_at DESC").
		Find(&nominations).Error
	return nominations, err
}

// GetForManager retrieves nominations whose nominee sits in a team the user
// manages. Deleted teams fall out of scope.
func (r *NominationRepository) GetForManager(managerID uuid.UUID) ([]models.Nomination, error) {
	return r.getForApprover("teams.manager_id", managerID)
}

// GetForDirector retrieves nominations whose nominee sits in a team the user
// directs. Deleted teams fall out of scope.
func (r *NominationRepository) GetForDirector(directorID uuid.UUID) ([]models.Nomination, error) {
	return r.getForApprover("teams.director_id", directorID)
}

func (r *NominationRepository) getForApprover(column string, approverID uuid.UUID) ([]models.Nomination, error) {
	var nominations []models.Nomination
	err := r.withGraph().
		Joins("JOIN users nominees ON nominations.nominee_id = nominees.id").
		Joins("JOIN teams ON nominees.team_id = teams.id AND teams.is_deleted = false").
		Where(column+" = ? AND nominations.status <> ? AND nominations.is_deleted = false", approverID, models.StatusDraft).
		Order("nominations.created_at DESC").
		Find(&nominations).Error
	return nominations, err
}

// GetPendingForManager retrieves the manager's actionable queue: nominations
// awaiting the first manager decision for teams the user manages.
func (r *NominationRepository) GetPendingForManager(managerID uuid.UUID) ([]models.Nomination, error) {
	return r.getPendingForApprover("teams.manager_id", managerID,
		[]models.NominationStatus{models.StatusPendingManager})
}

// GetPendingForDirector retrieves the director's actionable queue. Under the
// permissive policy every non-final, non-draft nomination is actionable; under
// the strict policy only manager-approved work reaches the director.
func (r *NominationRepository) GetPendingForDirector(directorID uuid.UUID, requireManagerFirst bool) ([]models.Nomination, error) {
	statuses := []models.NominationStatus{
		models.StatusPendingManager,
		models.StatusPendingDirector,
		models.StatusManagerApproved,
		models.StatusManagerRejected,
	}
	if requireManagerFirst {
		statuses = []models.NominationStatus{
			models.StatusManagerApproved,
			models.StatusPendingDirector,
		}
	}
	return r.getPendingForApprover("teams.director_id", directorID, statuses)
}

func (r *NominationRepository) getPendingForApprover(column string, approverID uuid.UUID, statuses []models.NominationStatus) ([]models.Nomination, error) {
	var nominations []models.Nomination
	err := r.withGraph().
		Joins("JOIN users nominees ON nominations.nominee_id = nominees.id").
		Joins("JOIN teams ON nominees.team_id = teams.id AND teams.is_deleted = false").
		Where(column+" = ? AND nominations.status IN ? AND nominations.is_deleted = false", approverID, statuses).
		Order("nominations.created_at ASC").
		Find(&nominations).Error
	return nominations, err
}

// GetDrafts retrieves a nominator's draft nominations, newest first
func (r *NominationRepository) GetDrafts(nominatorID uuid.UUID) ([]models.Nomination, error) {
	var nominations []models.Nomination
	err := r.withGraph().
		Where("nominator_id = ? AND status = ? AND is_deleted = false", nominatorID, models.StatusDraft).
		Order("updated_at DESC").
		Find(&nominations).Error
	return nominations, err
}

// GetLatestDraft retrieves the most recently touched draft for a nominator
func (r *NominationRepository) GetLatestDraft(nominatorID uuid.UUID) (*models.Nomination, error) {
	var nomination models.Nomination
	err := r.withGraph().
		Where("nominator_id = ? AND status = ? AND is_deleted = false", nominatorID, models.StatusDraft).
		Order("updated_at DESC").
		First(&nomination).Error
	if err != nil {
		return nil, err
	}
	return &nomination, nil
}

// GetByQuarterAndNominators retrieves nominations for a period authored by any
// of the given users
func (r *NominationRepository) GetByQuarterAndNominators(yearQuarterID uuid.UUID, nominatorIDs []uuid.UUID) ([]models.Nomination, error) {
	if len(nominatorIDs) == 0 {
		return []models.Nomination{}, nil
	}
	var nominations []models.Nomination
	err := r.withGraph().
		Where("year_quarter_id = ? AND nominator_id IN ? AND status <> ? AND is_deleted = false",
			yearQuarterID, nominatorIDs, models.StatusDraft).
		Order("created_at DESC").
		Find(&nominations).Error
	return nominations, err
}

// GetByTeamsAndQuarter retrieves nominations for a period whose nominees
// belong to any of the given teams
func (r *NominationRepository) GetByTeamsAndQuarter(teamIDs []uuid.UUID, yearQuarterID uuid.UUID) ([]models.Nomination, error) {
	if len(teamIDs) == 0 {
		return []models.Nomination{}, nil
	}
	var nominations []models.Nomination
	err := r.withGraph().
		Joins("JOIN users nominees ON nominations.nominee_id = nominees.id").
		Where("nominees.team_id IN ? AND nominations.year_quarter_id = ? AND nominations.status <> ? AND nominations.is_deleted = false",
			teamIDs, yearQuarterID, models.StatusDraft).
		Order("nominations.created_at DESC").
		Find(&nominations).Error
	return nominations, err
}

// GetOrphaned retrieves pending nominations whose nominee has no team, so no
// approver can be resolved for them. Surfaced to admins as a repair queue.
func (r *NominationRepository) GetOrphaned() ([]models.Nomination, error) {
	var nominations []models.Nomination
	pending := []models.NominationStatus{
		models.StatusPendingManager,
		models.StatusPendingDirector,
		models.StatusManagerApproved,
		models.StatusManagerRejected,
	}
	err := r.withGraph().
		Joins("JOIN users nominees ON nominations.nominee_id = nominees.id").
		Where("nominees.team_id IS NULL AND nominations.status IN ? AND nominations.is_deleted = false", pending).
		Order("nominations.created_at ASC").
		Find(&nominations).Error
	return nominations, err
}

// CountByStatus returns nomination counts grouped by status
func (r *NominationRepository) CountByStatus() (map[models.NominationStatus]int64, error) {
	type row struct {
		Status models.NominationStatus
		Count  int64
	}
	var rows []row
	err := r.db.Model(&models.Nomination{}).
		Select("status, COUNT(*) as count").
		Where("is_deleted = false").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.NominationStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// ApplyReview atomically advances a nomination's status and appends the ledger
// entry for the decision. The status update is guarded by the version the
// caller read; a lost race surfaces as ErrConcurrentModification and a second
// ledger entry by the same approver as ErrDuplicateApproval. Either failure
// rolls back the whole transaction.
func (r *NominationRepository) ApplyReview(nominationID uuid.UUID, expectedVersion int, newStatus models.NominationStatus, entry *models.Approval) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Nomination{}).
			Where("id = ? AND version = ? AND is_deleted = false", nominationID, expectedVersion).
			Updates(map[string]interface{}{
				"status":  newStatus,
				"version": gorm.Expr("version + 1"),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrConcurrentModification
		}

		if err := tx.Create(entry).Error; err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
				return apperrors.ErrDuplicateApproval
			}
			return err
		}
		return nil
	})
}

// withGraph preloads the relationships every listing endpoint renders
func (r *NominationRepository) withGraph() *gorm.DB {
	return r.db.
		Preload("Nominator").
		Preload("Nominee").
		Preload("Nominee.Team").
		Preload("Category").
		Preload("YearQuarter").
		Preload("Approvals").
		Preload("Approvals.Approver")
}

// touchTimestamp is used by tests to age drafts deterministically
func (r *NominationRepository) touchTimestamp(id uuid.UUID, at time.Time) error {
	return r.db.Model(&models.Nomination{}).Where("id = ?", id).Update("updated_at", at).Error
}
