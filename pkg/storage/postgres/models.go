package postgres

import (
	"time"

	"tasjeel/pkg/domain"
)

type PgContestant struct {
	NationalID string `db:"national_id"`

	FullName    string `db:"full_name"`
	PhoneNumber string `db:"phone_number"`
	Address     string `db:"address"`

	Level         string `db:"level"`
	Center        string `db:"center"`
	ExamCommittee string `db:"exam_committee"`
	GoldenPsalms  bool   `db:"golden_psalms"`

	Governorate string    `db:"governorate_from_id"`
	BirthDate   time.Time `db:"birth_date"`
	Gender      string    `db:"gender"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgContestant) ToDomain() *domain.Contestant {
	return &domain.Contestant{
		NationalID:    p.NationalID,
		FullName:      p.FullName,
		PhoneNumber:   p.PhoneNumber,
		Address:       p.Address,
		Level:         p.Level,
		Center:        p.Center,
		ExamCommittee: p.ExamCommittee,
		GoldenPsalms:  p.GoldenPsalms,
		Governorate:   p.Governorate,
		BirthDate:     p.BirthDate,
		Gender:        domain.Gender(p.Gender),
		CreatedAt:     p.CreatedAt,
	}
}

func (p *PgContestant) FromDomain(contestant domain.Contestant) {
	*p = PgContestant{
		NationalID:    contestant.NationalID,
		FullName:      contestant.FullName,
		PhoneNumber:   contestant.PhoneNumber,
		Address:       contestant.Address,
		Level:         contestant.Level,
		Center:        contestant.Center,
		ExamCommittee: contestant.ExamCommittee,
		GoldenPsalms:  contestant.GoldenPsalms,
		Governorate:   contestant.Governorate,
		BirthDate:     contestant.BirthDate,
		Gender:        string(contestant.Gender),
		CreatedAt:     contestant.CreatedAt,
	}
}

func pgContestantsToDomain(rows []PgContestant) []domain.Contestant {
	out := make([]domain.Contestant, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}
