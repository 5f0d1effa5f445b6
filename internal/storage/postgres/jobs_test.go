package postgres

import (
	"testing"

	"job-board-api/internal/models"
	"job-board-api/internal/transport/dto"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestBuildJobSearchConditions_NilAndEmptyFilter(t *testing.T) {
	conditions, args := buildJobSearchConditions(nil)
	assert.Empty(t, conditions)
	assert.Empty(t, args)

	conditions, args = buildJobSearchConditions(&dto.SearchJobsRequest{})
	assert.Empty(t, conditions)
	assert.Empty(t, args)
}

func TestBuildJobSearchConditions_SingleDimension(t *testing.T) {
	workingTime := models.WorkingFullTime
	conditions, args := buildJobSearchConditions(&dto.SearchJobsRequest{WorkingTime: &workingTime})

	assert.Equal(t, []string{"j.working_time = $1"}, conditions)
	assert.Equal(t, []interface{}{models.WorkingFullTime}, args)
}

func TestBuildJobSearchConditions_AllDimensions(t *testing.T) {
	workingTime := models.WorkingPartTime
	location := models.LocationHybrid
	seniority := models.SeniorityMidLevel

	conditions, args := buildJobSearchConditions(&dto.SearchJobsRequest{
		WorkingTime:     &workingTime,
		JobLocation:     &location,
		SeniorityLevel:  &seniority,
		JobTitle:        strPtr("engineer"),
		TechnicalSkills: strPtr("Go, Postgres ,Redis"),
	})

	assert.Equal(t, []string{
		"j.working_time = $1",
		"j.job_location = $2",
		"j.seniority_level = $3",
		"j.job_title ILIKE $4",
		"j.technical_skills = ANY($5)",
	}, conditions)

	assert.Len(t, args, 5)
	assert.Equal(t, "%engineer%", args[3])
	// Skill candidates are trimmed around the commas.
	assert.Equal(t, []string{"Go", "Postgres", "Redis"}, args[4])
}

func TestBuildJobSearchConditions_BlankStringsIgnored(t *testing.T) {
	conditions, args := buildJobSearchConditions(&dto.SearchJobsRequest{
		JobTitle:        strPtr(""),
		TechnicalSkills: strPtr(""),
	})
	assert.Empty(t, conditions)
	assert.Empty(t, args)
}

func TestBuildListQuery(t *testing.T) {
	base := "SELECT * FROM jobs j"

	assert.Equal(t, "SELECT * FROM jobs j ORDER BY created_at DESC",
		buildListQuery(base, nil))
	assert.Equal(t, "SELECT * FROM jobs j WHERE j.working_time = $1 AND j.job_location = $2 ORDER BY created_at DESC",
		buildListQuery(base, []string{"j.working_time = $1", "j.job_location = $2"}))
}
