package organizationrepo

import (
	"context"
	"errors"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/core/domain/model/organization"
	"wholesale/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrganizationRepository implements OrganizationRepository using GORM.
type GormOrganizationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrganizationRepository creates a new GORM organization repository.
func NewGormOrganizationRepository(db *gorm.DB, tracker aggregateTracker) *GormOrganizationRepository {
	return &GormOrganizationRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddOrganization saves a new organization to the database.
func (r *GormOrganizationRepository) AddOrganization(
	ctx context.Context,
	aggregate *organization.Organization,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := organizationFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// UpdateOrganization saves contact changes for an existing organization.
func (r *GormOrganizationRepository) UpdateOrganization(
	ctx context.Context,
	aggregate *organization.Organization,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := organizationFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrganizationDTO{}).
		Where("id = ?", dto.ID).
		Select("Name", "INN", "KPP", "Address", "Email").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("organization", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetOrganization retrieves an organization by ID.
func (r *GormOrganizationRepository) GetOrganization(
	ctx context.Context,
	id kernel.UUID,
) (*organization.Organization, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrganizationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("organization", id.String())
		}
		return nil, err
	}

	return organizationToDomain(dto)
}

// AddEmployee saves a new employee to the database.
func (r *GormOrganizationRepository) AddEmployee(ctx context.Context, employee *organization.Employee) error {
	if err := employee.Validate(); err != nil {
		return err
	}

	dto := employeeFromDomain(employee)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(employee.ID(), employee)
	return nil
}

// GetEmployee retrieves an employee by ID.
func (r *GormOrganizationRepository) GetEmployee(
	ctx context.Context,
	id kernel.UUID,
) (*organization.Employee, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto EmployeeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("employee", id.String())
		}
		return nil, err
	}

	return employeeToDomain(dto)
}
