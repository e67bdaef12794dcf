package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"medicare-plus/internal/converter"
	"medicare-plus/internal/delivery/dto"
	"medicare-plus/internal/domain/entity"
	"medicare-plus/pkg/mask"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrOpeningNotFound = errors.New("job opening not found")

type CareerUsecase interface {
	ListOpenings(ctx context.Context) (*dto.JobOpeningListResponse, error)
	Apply(ctx context.Context, req *dto.JobApplicationRequest) (*dto.JobApplicationResponse, error)
}

type careerUsecase struct {
	log *logrus.Logger
	now func() time.Time
}

func NewCareerUsecase(log *logrus.Logger) CareerUsecase {
	return &careerUsecase{
		log: log,
		now: time.Now,
	}
}

func (u *careerUsecase) ListOpenings(ctx context.Context) (*dto.JobOpeningListResponse, error) {
	openings := converter.JobOpeningsToResponses(entity.JobOpenings())
	return &dto.JobOpeningListResponse{
		Openings: openings,
		Total:    len(openings),
	}, nil
}

// Apply accepts an application for an open position. Applications are not
// stored; the reference lets HR match the logged entry.
func (u *careerUsecase) Apply(ctx context.Context, req *dto.JobApplicationRequest) (*dto.JobApplicationResponse, error) {
	opening, ok := entity.FindJobOpening(req.OpeningID)
	if !ok {
		return nil, ErrOpeningNotFound
	}

	reference := "APP-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10])
	submittedAt := u.now()

	u.log.WithFields(logrus.Fields{
		"reference":  reference,
		"opening_id": opening.ID,
		"email":      mask.Email(req.Email),
		"experience": req.YearsExperience,
	}).Info("Job application received")

	return &dto.JobApplicationResponse{
		Reference:   reference,
		OpeningID:   opening.ID,
		Title:       opening.Title,
		SubmittedAt: submittedAt,
	}, nil
}
