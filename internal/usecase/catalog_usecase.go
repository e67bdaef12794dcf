package usecase

import (
	"context"
	"errors"
	"time"

	"medicare-plus/internal/converter"
	"medicare-plus/internal/delivery/dto"
	"medicare-plus/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrDepartmentNotFound = errors.New("department not found")
	ErrDateInPast         = errors.New("date is in the past")
)

type CatalogUsecase interface {
	ListDepartments(ctx context.Context) (*dto.DepartmentListResponse, error)
	GetDepartment(ctx context.Context, id string) (*dto.DepartmentDetailResponse, error)
	DoctorsByDepartment(ctx context.Context, id string) (*dto.DoctorListResponse, error)
	GetSlots(ctx context.Context, query *dto.SlotsQuery) (*dto.SlotListResponse, error)
	Quote(ctx context.Context, req *dto.QuoteRequest) (*dto.QuoteResponse, error)
}

type catalogUsecase struct {
	log     *logrus.Logger
	loc     *time.Location
	vatRate decimal.Decimal
	now     func() time.Time
}

func NewCatalogUsecase(log *logrus.Logger, loc *time.Location, vatRate float64) CatalogUsecase {
	return &catalogUsecase{
		log:     log,
		loc:     loc,
		vatRate: decimal.NewFromFloat(vatRate),
		now:     time.Now,
	}
}

// ListDepartments returns every department with its fee table
func (u *catalogUsecase) ListDepartments(ctx context.Context) (*dto.DepartmentListResponse, error) {
	departments := converter.DepartmentsToResponses(entity.Departments)
	return &dto.DepartmentListResponse{
		Departments: departments,
		Total:       len(departments),
	}, nil
}

func (u *catalogUsecase) GetDepartment(ctx context.Context, id string) (*dto.DepartmentDetailResponse, error) {
	department := entity.Department(id)
	if !department.IsValid() {
		return nil, ErrDepartmentNotFound
	}

	return &dto.DepartmentDetailResponse{
		DepartmentResponse: converter.DepartmentToResponse(department),
		Doctors:            converter.DoctorsToResponses(entity.DoctorsByDepartment(department)),
	}, nil
}

// DoctorsByDepartment lists only the doctors of the given department
func (u *catalogUsecase) DoctorsByDepartment(ctx context.Context, id string) (*dto.DoctorListResponse, error) {
	department := entity.Department(id)
	if !department.IsValid() {
		return nil, ErrDepartmentNotFound
	}

	doctors := converter.DoctorsToResponses(entity.DoctorsByDepartment(department))
	return &dto.DoctorListResponse{
		Doctors: doctors,
		Total:   len(doctors),
	}, nil
}

// GetSlots returns the time slots of a date. Slots of today whose hour has
// started are flagged disabled.
func (u *catalogUsecase) GetSlots(ctx context.Context, query *dto.SlotsQuery) (*dto.SlotListResponse, error) {
	now := u.now().In(u.loc)
	date, err := parseAppointmentDate(query.Date, u.loc)
	if err != nil {
		return nil, FieldErrors{"date": msgDateFormat}
	}
	if date.Before(startOfDay(now)) {
		return nil, ErrDateInPast
	}

	slots := entity.GenerateSlots(date, now, query.Priority || query.Company)
	return &dto.SlotListResponse{
		Date:  query.Date,
		Slots: converter.TimeSlotsToResponses(slots),
	}, nil
}

// Quote prices a booking the same way the form submission does
func (u *catalogUsecase) Quote(ctx context.Context, req *dto.QuoteRequest) (*dto.QuoteResponse, error) {
	department := entity.Department(req.Department)
	baseRate, ok := entity.BaseRate(department, req.IsCompany, req.Priority)
	if !ok {
		return nil, ErrDepartmentNotFound
	}
	total, _ := entity.Cost(department, req.IsCompany, req.Priority, req.GroupBooking, req.NumberOfAttendees)

	attendees := 1
	if req.GroupBooking && req.NumberOfAttendees > 0 {
		attendees = req.NumberOfAttendees
	}
	vat := entity.ComputeVAT(total, u.vatRate)

	return &dto.QuoteResponse{
		Department: string(department),
		Tier:       string(entity.Tier(req.IsCompany, req.Priority)),
		BaseRate:   baseRate,
		Attendees:  attendees,
		Total:      total,
		PreVAT:     vat.PreVAT,
		VAT:        vat.VAT,
	}, nil
}

func parseAppointmentDate(value string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", value, loc)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
