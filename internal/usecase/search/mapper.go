package search

import (
	"go.uber.org/zap"

	"github.com/ImComy/Modaresy-sub002/internal/domain"
	"github.com/ImComy/Modaresy-sub002/internal/transport/rest"
)

// mapTutors converts raw API documents to internal records.
func mapTutors(docs []rest.TutorDoc, logger *zap.Logger) []domain.TutorRecord {
	records := make([]domain.TutorRecord, 0, len(docs))
	for _, d := range docs {
		records = append(records, mapTutor(d, logger))
	}
	return records
}

func mapTutor(doc rest.TutorDoc, logger *zap.Logger) domain.TutorRecord {
	rec := domain.TutorRecord{
		ID:        doc.ID,
		Name:      doc.Name,
		Governate: doc.Governate,
		District:  doc.District,
	}
	if doc.Rating != nil {
		rec.Rating = *doc.Rating
		rec.HasRating = true
	}

	rec.Subjects = make([]domain.SubjectProfile, 0, len(doc.SubjectProfiles))
	for _, sp := range doc.SubjectProfiles {
		rec.Subjects = append(rec.Subjects, mapProfile(doc.ID, sp, logger))
	}
	return rec
}

// mapProfile fills one subject profile, resolving the education placement
// from the explicit fields when present and from the legacy combined
// "type" string otherwise.
func mapProfile(tutorID string, sp rest.SubjectProfileDoc, logger *zap.Logger) domain.SubjectProfile {
	prof := domain.SubjectProfile{
		Subject:         sp.Subject,
		Grade:           sp.Grade,
		Language:        sp.Language,
		EducationSystem: sp.EducationSystem,
		Sector:          sp.Sector,
	}

	if prof.EducationSystem == "" && prof.Sector == "" && sp.Type != "" {
		system, sector, ok := domain.ParseLegacyType(sp.Type)
		if ok {
			prof.EducationSystem = system
			prof.Sector = sector
		} else {
			logger.Warn("unclassifiable legacy subject type",
				zap.String("tutor_id", tutorID),
				zap.String("type", sp.Type),
			)
		}
	}
	if prof.EducationSystem != "" && prof.Sector == "" {
		prof.Sector = domain.SectorGeneral
	}

	switch {
	case sp.PrivatePrice != nil:
		prof.Price = *sp.PrivatePrice
		prof.HasPrice = true
	case sp.GroupPrice != nil:
		prof.Price = *sp.GroupPrice
		prof.HasPrice = true
	}
	if sp.Rating != nil {
		prof.Rating = *sp.Rating
		prof.HasRating = true
	}
	return prof
}
