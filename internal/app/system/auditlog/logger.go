// internal/app/system/auditlog/logger.go
package auditlog

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dalemusser/programdesign/internal/app/store/audit"
	"github.com/dalemusser/programdesign/internal/app/system/ratelimit"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Destination settings for a category.
const (
	ModeAll = "all" // MongoDB + zap
	ModeDB  = "db"  // MongoDB only
	ModeLog = "log" // zap only
	ModeOff = "off" // disabled
)

// ValidMode reports whether m is one of the destination settings.
func ValidMode(m string) bool {
	switch m {
	case ModeAll, ModeDB, ModeLog, ModeOff:
		return true
	}
	return false
}

// Config holds audit logging configuration.
type Config struct {
	// Projects controls logging for project and wizard events.
	Projects string
}

// Logger provides convenience methods for logging audit events.
// It logs to both MongoDB (via audit.Store) and structured logs (via zap).
type Logger struct {
	store  *audit.Store
	zapLog *zap.Logger
	config Config
}

// New creates a new audit Logger.
func New(store *audit.Store, zapLog *zap.Logger, config Config) *Logger {
	return &Logger{
		store:  store,
		zapLog: zapLog,
		config: config,
	}
}

func (l *Logger) logToZap(event audit.Event) {
	fields := []zap.Field{
		zap.Bool("audit", true),
		zap.String("category", event.Category),
		zap.String("event_type", event.EventType),
		zap.Bool("success", event.Success),
		zap.String("ip", event.IP),
	}
	if event.ProjectID != nil {
		fields = append(fields, zap.String("project_id", event.ProjectID.Hex()))
	}
	if event.OwnerID != "" {
		fields = append(fields, zap.String("owner_id", event.OwnerID))
	}
	if event.FailureReason != "" {
		fields = append(fields, zap.String("failure_reason", event.FailureReason))
	}
	for k, v := range event.Details {
		fields = append(fields, zap.String("detail_"+k, v))
	}

	if event.Success {
		l.zapLog.Info("audit event", fields...)
	} else {
		l.zapLog.Warn("audit event", fields...)
	}
}

// Log records an audit event based on configuration.
// A nil logger is a no-op so handlers and tests can run without auditing.
func (l *Logger) Log(ctx context.Context, event audit.Event) {
	if l == nil {
		return
	}

	setting := ModeAll
	if event.Category == audit.CategoryProject && l.config.Projects != "" {
		setting = l.config.Projects
	}
	if setting == ModeOff {
		return
	}

	if setting == ModeAll || setting == ModeLog {
		l.logToZap(event)
	}

	if (setting == ModeAll || setting == ModeDB) && l.store != nil {
		if err := l.store.Log(ctx, event); err != nil {
			l.zapLog.Error("failed to store audit event",
				zap.Error(err),
				zap.String("event_type", event.EventType),
			)
		}
	}
}

func (l *Logger) project(ctx context.Context, r *http.Request, eventType, ownerID string, projectID primitive.ObjectID, details map[string]string) {
	if l == nil {
		return
	}
	l.Log(ctx, audit.Event{
		Category:  audit.CategoryProject,
		EventType: eventType,
		ProjectID: &projectID,
		OwnerID:   ownerID,
		IP:        ratelimit.ClientIP(r),
		UserAgent: r.UserAgent(),
		Success:   true,
		Details:   details,
	})
}

// ProjectCreated logs a new project.
func (l *Logger) ProjectCreated(ctx context.Context, r *http.Request, ownerID string, projectID primitive.ObjectID, name string) {
	l.project(ctx, r, audit.EventProjectCreated, ownerID, projectID, map[string]string{
		"name": name,
	})
}

// ProjectUpdated logs a name/description change.
func (l *Logger) ProjectUpdated(ctx context.Context, r *http.Request, ownerID string, projectID primitive.ObjectID, name string) {
	l.project(ctx, r, audit.EventProjectUpdated, ownerID, projectID, map[string]string{
		"name": name,
	})
}

// ProjectDeleted logs a deleted project.
func (l *Logger) ProjectDeleted(ctx context.Context, r *http.Request, ownerID string, projectID primitive.ObjectID) {
	l.project(ctx, r, audit.EventProjectDeleted, ownerID, projectID, nil)
}

// SectionSaved logs a saved wizard section and whether it now satisfies its
// step's completion rule.
func (l *Logger) SectionSaved(ctx context.Context, r *http.Request, ownerID string, projectID primitive.ObjectID, section string, complete bool) {
	l.project(ctx, r, audit.EventSectionSaved, ownerID, projectID, map[string]string{
		"section":  section,
		"complete": strconv.FormatBool(complete),
	})
}

// StepCompleted logs a mark-complete call and the stored step afterwards.
func (l *Logger) StepCompleted(ctx context.Context, r *http.Request, ownerID string, projectID primitive.ObjectID, step, stored int) {
	l.project(ctx, r, audit.EventStepCompleted, ownerID, projectID, map[string]string{
		"step":         strconv.Itoa(step),
		"current_step": strconv.Itoa(stored),
	})
}

// ObjectiveTreeDerived logs an objective tree built from the problem tree.
func (l *Logger) ObjectiveTreeDerived(ctx context.Context, r *http.Request, ownerID string, projectID primitive.ObjectID, means, ends int) {
	l.project(ctx, r, audit.EventObjectiveTreeDerived, ownerID, projectID, map[string]string{
		"nodes": fmt.Sprintf("%d means, %d ends", means, ends),
	})
}
