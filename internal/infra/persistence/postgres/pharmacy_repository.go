package postgres

import (
	"context"
	"strings"

	"github.com/Bilal-EZ-ZAIM/devopes/internal/domain/entity"
	"github.com/Bilal-EZ-ZAIM/devopes/internal/domain/repository"
	"github.com/Bilal-EZ-ZAIM/devopes/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	pharmacyLocationSQL = "ST_SetSRID(ST_MakePoint(pharmacies.longitude, pharmacies.latitude), 4326)::geography"
	queryPointSQL       = "ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography"
)

// pharmacyColumns maps searchable pharmacy fields to their column names.
var pharmacyColumns = map[entity.PharmacyField]string{
	entity.PharmacyFieldName:            "pharmacies.name",
	entity.PharmacyFieldCity:            "pharmacies.city",
	entity.PharmacyFieldDetailedAddress: "pharmacies.detailed_address",
	entity.PharmacyFieldPhone:           "pharmacies.phone",
	entity.PharmacyFieldEmail:           "pharmacies.email",
	entity.PharmacyFieldDescription:     "pharmacies.description",
}

// pharmacyRepository implements the repository.PharmacyRepository interface.
type pharmacyRepository struct {
	db *gorm.DB
}

// NewPharmacyRepository is the constructor for pharmacyRepository.
func NewPharmacyRepository(db *gorm.DB) repository.PharmacyRepository {
	return &pharmacyRepository{
		db: db,
	}
}

// pharmacyMatchRow scans a pharmacy row together with its computed distance.
type pharmacyMatchRow struct {
	model.PharmacyModel
	Distance *float64 `gorm:"column:distance"`
}

// Create persists a new pharmacy.
func (repo *pharmacyRepository) Create(ctx context.Context, pharmacy *entity.Pharmacy) error {
	pharmacyM := fromPharmacyDomain(pharmacy)

	if err := repo.db.WithContext(ctx).Create(pharmacyM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrPharmacyEmailTaken
		}
		if isNotNullConstraintViolation(err) {
			return errors.Wrap(err, "missing required pharmacy information")
		}

		return errors.Wrap(err, "failed to create pharmacy")
	}

	pharmacy.ID = pharmacyM.ID.String()
	pharmacy.CreatedAt = pharmacyM.CreatedAt
	pharmacy.UpdatedAt = pharmacyM.UpdatedAt

	return nil
}

// FindAll returns every pharmacy ordered by creation time.
func (repo *pharmacyRepository) FindAll(ctx context.Context) ([]*entity.Pharmacy, error) {
	var pharmacyMs []*model.PharmacyModel
	if err := repo.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&pharmacyMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list pharmacies")
	}

	pharmacies := make([]*entity.Pharmacy, 0, len(pharmacyMs))
	for _, pharmacyM := range pharmacyMs {
		pharmacies = append(pharmacies, toPharmacyDomain(pharmacyM))
	}

	return pharmacies, nil
}

// FindByID retrieves a pharmacy by its unique ID.
func (repo *pharmacyRepository) FindByID(ctx context.Context, id string) (*entity.Pharmacy, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, repository.ErrPharmacyNotFound
	}

	var pharmacyM model.PharmacyModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", uid).
		First(&pharmacyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPharmacyNotFound
		}

		return nil, errors.Wrap(err, "failed to find pharmacy by id")
	}

	return toPharmacyDomain(&pharmacyM), nil
}

// Update applies the patch with a single UPDATE ... RETURNING statement.
func (repo *pharmacyRepository) Update(ctx context.Context, id string, patch *entity.PharmacyPatch) (*entity.Pharmacy, error) {
	if patch.IsEmpty() {
		return repo.FindByID(ctx, id)
	}

	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, repository.ErrPharmacyNotFound
	}

	var pharmacyM model.PharmacyModel
	result := repo.db.WithContext(ctx).
		Model(&pharmacyM).
		Clauses(clause.Returning{}).
		Where("id = ?", uid).
		Updates(pharmacyPatchColumns(patch))
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return nil, repository.ErrPharmacyEmailTaken
		}

		return nil, errors.Wrap(result.Error, "failed to update pharmacy")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrPharmacyNotFound
	}

	return toPharmacyDomain(&pharmacyM), nil
}

// Delete removes a pharmacy permanently.
func (repo *pharmacyRepository) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return repository.ErrPharmacyNotFound
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", uid).
		Delete(&model.PharmacyModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete pharmacy")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPharmacyNotFound
	}

	return nil
}

// Aggregate runs the text and geo filters as one SELECT. When a point is given
// the PostGIS geography distance is selected and used for ordering; a radius
// adds an indexed bounding-box prefilter before ST_DWithin.
func (repo *pharmacyRepository) Aggregate(ctx context.Context, query *repository.PharmacyQuery) ([]*entity.PharmacyMatch, error) {
	tx := repo.db.WithContext(ctx).Model(&model.PharmacyModel{})

	if query.OnGuardOnly {
		tx = tx.Where("pharmacies.is_on_gard = ?", true)
	}

	if cond, args := textCondition(query.Text, query.TextFields); cond != "" {
		tx = tx.Where(cond, args...)
	}

	if query.Near != nil {
		lng, lat := query.Near.Longitude, query.Near.Latitude
		tx = tx.Select("pharmacies.*, ST_Distance("+pharmacyLocationSQL+", "+queryPointSQL+") AS distance", lng, lat)

		if query.MaxDistance > 0 {
			bound := query.Near.BoundAround(query.MaxDistance)
			if bound.Min.Lat() >= -90 && bound.Max.Lat() <= 90 && bound.Min.Lon() >= -180 && bound.Max.Lon() <= 180 {
				tx = tx.Where("pharmacies.latitude BETWEEN ? AND ? AND pharmacies.longitude BETWEEN ? AND ?",
					bound.Min.Lat(), bound.Max.Lat(), bound.Min.Lon(), bound.Max.Lon())
			}
			tx = tx.Where("ST_DWithin("+pharmacyLocationSQL+", "+queryPointSQL+", ?)", lng, lat, query.MaxDistance)
		}

		tx = tx.Order("distance ASC")
	} else {
		tx = tx.Order("pharmacies.created_at ASC")
	}

	var rows []*pharmacyMatchRow
	if err := tx.Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate pharmacies")
	}

	matches := make([]*entity.PharmacyMatch, 0, len(rows))
	for _, row := range rows {
		matches = append(matches, &entity.PharmacyMatch{
			Pharmacy: toPharmacyDomain(&row.PharmacyModel),
			Distance: row.Distance,
		})
	}

	return matches, nil
}

// textCondition builds a case-insensitive substring match over the given fields.
func textCondition(text string, fields []entity.PharmacyField) (string, []any) {
	if text == "" || len(fields) == 0 {
		return "", nil
	}

	pattern := "%" + escapeLike(text) + "%"
	conds := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields))
	for _, field := range fields {
		column, ok := pharmacyColumns[field]
		if !ok {
			continue
		}
		conds = append(conds, column+" ILIKE ?")
		args = append(args, pattern)
	}
	if len(conds) == 0 {
		return "", nil
	}

	return "(" + strings.Join(conds, " OR ") + ")", args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike escapes LIKE wildcards so user input matches literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// pharmacyPatchColumns converts a patch into a column map for Updates.
func pharmacyPatchColumns(patch *entity.PharmacyPatch) map[string]any {
	columns := make(map[string]any)
	if patch.Name != nil {
		columns["name"] = *patch.Name
	}
	if patch.Email != nil {
		columns["email"] = *patch.Email
	}
	if patch.Phone != nil {
		columns["phone"] = *patch.Phone
	}
	if patch.City != nil {
		columns["city"] = *patch.City
	}
	if patch.DetailedAddress != nil {
		columns["detailed_address"] = *patch.DetailedAddress
	}
	if patch.Latitude != nil {
		columns["latitude"] = *patch.Latitude
	}
	if patch.Longitude != nil {
		columns["longitude"] = *patch.Longitude
	}
	if patch.IsOnDuty != nil {
		columns["is_on_duty"] = *patch.IsOnDuty
	}
	if patch.IsOnGard != nil {
		columns["is_on_gard"] = *patch.IsOnGard
	}
	if patch.Description != nil {
		columns["description"] = *patch.Description
	}
	if patch.Image != nil {
		columns["image"] = *patch.Image
	}
	if patch.ImageMobile != nil {
		columns["image_mobile"] = *patch.ImageMobile
	}

	return columns
}

// --- Mapper Functions ---

// toPharmacyDomain converts a GORM PharmacyModel to a domain Pharmacy entity.
func toPharmacyDomain(data *model.PharmacyModel) *entity.Pharmacy {
	if data == nil {
		return nil
	}

	return &entity.Pharmacy{
		ID:              data.ID.String(),
		Name:            data.Name,
		Email:           data.Email,
		Phone:           data.Phone,
		City:            data.City,
		DetailedAddress: data.DetailedAddress,
		Latitude:        data.Latitude,
		Longitude:       data.Longitude,
		IsOnDuty:        data.IsOnDuty,
		IsOnGard:        data.IsOnGard,
		Description:     data.Description,
		Image:           data.Image,
		ImageMobile:     data.ImageMobile,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromPharmacyDomain converts a domain Pharmacy entity to a GORM PharmacyModel.
func fromPharmacyDomain(data *entity.Pharmacy) *model.PharmacyModel {
	if data == nil {
		return nil
	}

	pharmacyM := &model.PharmacyModel{
		Name:            data.Name,
		Email:           data.Email,
		Phone:           data.Phone,
		City:            data.City,
		DetailedAddress: data.DetailedAddress,
		Latitude:        data.Latitude,
		Longitude:       data.Longitude,
		IsOnDuty:        data.IsOnDuty,
		IsOnGard:        data.IsOnGard,
		Description:     data.Description,
		Image:           data.Image,
		ImageMobile:     data.ImageMobile,
	}
	if uid, err := uuid.Parse(data.ID); err == nil {
		pharmacyM.ID = uid
	}

	return pharmacyM
}
