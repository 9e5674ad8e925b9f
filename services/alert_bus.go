package services

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"backend/models"
	"backend/utils"
)

type alertDeps struct {
	db *gorm.DB
	rt *RealtimeHub
	ps *PushService
}

var _alert alertDeps

func InitAlertDeps(db *gorm.DB, rt *RealtimeHub, ps *PushService) {
	_alert = alertDeps{db: db, rt: rt, ps: ps}
}

// EmitAlert persists an alert and fans it out over websocket, push
// and, for critical alerts, email. Safe to call anywhere; a repeat of
// the same type within 24h is swallowed to avoid spamming.
func EmitAlert(userID uint, typ, severity, message string) {
	if _alert.db == nil {
		return // not initialized
	}

	var recent int64
	_alert.db.Model(&models.Alert{}).
		Where("user_id = ? AND type = ? AND created_at > ?", userID, typ, time.Now().Add(-24*time.Hour)).
		Count(&recent)
	if recent > 0 {
		return
	}

	a := &models.Alert{
		UserID:    userID,
		Type:      typ,
		Severity:  severity,
		Message:   message,
		CreatedAt: time.Now(),
	}
	if err := _alert.db.Create(a).Error; err != nil {
		log.WithError(err).Warn("alert persist failed")
		return
	}

	if _alert.rt != nil {
		_alert.rt.Broadcast(userID, map[string]any{
			"kind":  "alert.created",
			"alert": a,
		})
	}
	if _alert.ps != nil {
		_alert.ps.PushToUser(userID, "Health Alert", message, map[string]string{
			"type": typ, "alertId": fmt.Sprintf("%d", a.ID),
		})
	}
	if severity == string(SeverityCritical) {
		var user models.User
		if err := _alert.db.First(&user, userID).Error; err == nil {
			if err := utils.SendCriticalAlertEmail(user.Email, message); err != nil {
				log.WithError(err).Warn("critical alert email failed")
			}
		}
	}
}

func GetAlertHistory(userID uint, limit int) ([]models.Alert, error) {
	if limit <= 0 {
		limit = 50
	}
	var alerts []models.Alert
	err := _alert.db.Where("user_id = ?", userID).Order("created_at desc").Limit(limit).Find(&alerts).Error
	return alerts, err
}
