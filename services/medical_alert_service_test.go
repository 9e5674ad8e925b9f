package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"backend/models"
)

func taggedMoment(age time.Duration, tags string) models.Moment {
	b := 4
	return models.Moment{Timestamp: time.Now().Add(-age), BristolType: &b, Tags: tags}
}

func diarrheaMoment(age time.Duration) models.Moment {
	b := 7
	return models.Moment{Timestamp: time.Now().Add(-age), BristolType: &b}
}

func findAlert(result MedicalAlertResult, t AlertType) *MedicalAlert {
	for i := range result.Alerts {
		if result.Alerts[i].Type == t {
			return &result.Alerts[i]
		}
	}
	return nil
}

func TestCheckAlerts_BloodIsCritical(t *testing.T) {
	svc := NewMedicalAlertService()
	moments := []models.Moment{taggedMoment(2*time.Hour, models.TagBlood)}

	result := svc.CheckAlerts(moments, nil)

	assert.True(t, result.HasAlerts)
	assert.True(t, result.HasCritical)
	alert := findAlert(result, AlertBlood)
	assert.NotNil(t, alert)
	assert.Equal(t, SeverityCritical, alert.Severity)
}

func TestCheckAlerts_BloodOutsideWindowIgnored(t *testing.T) {
	svc := NewMedicalAlertService()
	moments := []models.Moment{
		taggedMoment(8*24*time.Hour, models.TagBlood),
		taggedMoment(2*time.Hour, ""),
	}

	result := svc.CheckAlerts(moments, nil)

	assert.Nil(t, findAlert(result, AlertBlood))
	assert.False(t, result.HasCritical)
}

func TestCheckAlerts_WindowIsRollingElapsedTime(t *testing.T) {
	svc := NewMedicalAlertService()

	inside := []models.Moment{taggedMoment(7*24*time.Hour-time.Minute, models.TagBlood)}
	assert.NotNil(t, findAlert(svc.CheckAlerts(inside, nil), AlertBlood))

	outside := []models.Moment{taggedMoment(7*24*time.Hour+time.Minute, models.TagBlood)}
	assert.Nil(t, findAlert(svc.CheckAlerts(outside, nil), AlertBlood))
}

func TestCheckAlerts_MucusNeedsFiveInTwoWeeks(t *testing.T) {
	svc := NewMedicalAlertService()
	var moments []models.Moment
	for i := 0; i < 4; i++ {
		moments = append(moments, taggedMoment(time.Duration(i)*48*time.Hour, models.TagMucus))
	}
	assert.Nil(t, findAlert(svc.CheckAlerts(moments, nil), AlertMucus))

	moments = append(moments, taggedMoment(9*24*time.Hour, models.TagMucus))
	alert := findAlert(svc.CheckAlerts(moments, nil), AlertMucus)
	assert.NotNil(t, alert)
	assert.Equal(t, SeverityWarning, alert.Severity)
}

func TestCheckAlerts_ConstipationRequiresHistory(t *testing.T) {
	svc := NewMedicalAlertService()

	// No history at all: silence is not evidence.
	empty := svc.CheckAlerts(nil, nil)
	assert.False(t, empty.HasAlerts)
	assert.Nil(t, findAlert(empty, AlertConstipation))

	// Old history but nothing in 3 days.
	moments := []models.Moment{taggedMoment(5*24*time.Hour, "")}
	assert.NotNil(t, findAlert(svc.CheckAlerts(moments, nil), AlertConstipation))

	// History counts however old it is: a user whose last log is
	// months back stopped logging, they didn't never log.
	stale := []models.Moment{taggedMoment(90*24*time.Hour, "")}
	assert.NotNil(t, findAlert(svc.CheckAlerts(stale, nil), AlertConstipation))

	// A recent moment clears it.
	moments = append(moments, taggedMoment(12*time.Hour, ""))
	assert.Nil(t, findAlert(svc.CheckAlerts(moments, nil), AlertConstipation))
}

func TestCheckAlerts_DiarrheaThreshold(t *testing.T) {
	svc := NewMedicalAlertService()
	var moments []models.Moment
	for i := 0; i < 5; i++ {
		moments = append(moments, diarrheaMoment(time.Duration(i)*24*time.Hour))
	}

	alert := findAlert(svc.CheckAlerts(moments, nil), AlertDiarrhea)
	assert.NotNil(t, alert)
	assert.Equal(t, SeverityWarning, alert.Severity)
}

func TestCheckAlerts_OutputOrderIsStable(t *testing.T) {
	svc := NewMedicalAlertService()
	var moments []models.Moment
	for i := 0; i < 5; i++ {
		moments = append(moments, diarrheaMoment(time.Duration(i)*24*time.Hour))
		moments = append(moments, taggedMoment(time.Duration(i)*24*time.Hour, models.TagMucus))
	}
	moments = append(moments, taggedMoment(time.Hour, models.TagBlood))

	result := svc.CheckAlerts(moments, nil)

	var types []AlertType
	for _, a := range result.Alerts {
		types = append(types, a.Type)
	}
	assert.Equal(t, []AlertType{AlertBlood, AlertMucus, AlertDiarrhea}, types)
}

func TestCheckAlerts_DismissalSuppressesUntilNewEvidence(t *testing.T) {
	svc := NewMedicalAlertService()
	moments := []models.Moment{taggedMoment(48*time.Hour, models.TagBlood)}
	dismissals := map[AlertType]time.Time{AlertBlood: time.Now().Add(-24 * time.Hour)}

	// Dismissed after the only qualifying moment: stays hidden.
	assert.Nil(t, findAlert(svc.CheckAlerts(moments, dismissals), AlertBlood))

	// Fresh evidence after the dismissal resurfaces it.
	moments = append(moments, taggedMoment(time.Hour, models.TagBlood))
	assert.NotNil(t, findAlert(svc.CheckAlerts(moments, dismissals), AlertBlood))
}

func TestCheckAlerts_ConstipationDismissalSnoozes24h(t *testing.T) {
	svc := NewMedicalAlertService()
	moments := []models.Moment{taggedMoment(6*24*time.Hour, "")}

	fresh := map[AlertType]time.Time{AlertConstipation: time.Now().Add(-2 * time.Hour)}
	assert.Nil(t, findAlert(svc.CheckAlerts(moments, fresh), AlertConstipation))

	stale := map[AlertType]time.Time{AlertConstipation: time.Now().Add(-30 * time.Hour)}
	assert.NotNil(t, findAlert(svc.CheckAlerts(moments, stale), AlertConstipation))
}

func TestGetDismissalReference_LatestQualifyingMoment(t *testing.T) {
	svc := NewMedicalAlertService()
	newer := taggedMoment(2*time.Hour, models.TagBlood)
	older := taggedMoment(48*time.Hour, models.TagBlood)
	moments := []models.Moment{older, newer}

	ref := svc.GetDismissalReference(AlertBlood, moments)

	assert.Equal(t, newer.Timestamp, ref)
}

func TestGetDismissalReference_ConstipationUsesNow(t *testing.T) {
	svc := NewMedicalAlertService()

	before := time.Now()
	ref := svc.GetDismissalReference(AlertConstipation, nil)
	after := time.Now()

	assert.False(t, ref.Before(before))
	assert.False(t, ref.After(after))
}
