package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jukeyman/jams-api/pkg/models"
)

// ── Projects ────────────────────────────────────────────────

const projectCols = `id, owner_id, name, COALESCE(description, ''), status, created_at, updated_at`

// ListProjects returns active projects, newest first.
func (db *DB) ListProjects(ctx context.Context) ([]models.Project, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT `+projectCols+` FROM projects
		WHERE status != 'deleted' ORDER BY created_at DESC LIMIT 100
	`)
	if err != nil {
		return nil, fmt.Errorf("querying projects: %w", err)
	}
	defer rows.Close()

	var results []models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Description, &p.Status, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning project: %w", err)
		}
		results = append(results, p)
	}
	return results, rows.Err()
}

// CreateProject inserts a new project row.
func (db *DB) CreateProject(ctx context.Context, p *models.Project) error {
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO projects (id, owner_id, name, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7)
	`, p.ID, p.OwnerID, p.Name, p.Description, p.Status, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	return nil
}

// GetProject retrieves a non-deleted project by id.
func (db *DB) GetProject(ctx context.Context, id string) (*models.Project, error) {
	var p models.Project
	err := db.Pool.QueryRow(ctx, `
		SELECT `+projectCols+` FROM projects WHERE id = $1 AND status != 'deleted'
	`, id).Scan(&p.ID, &p.OwnerID, &p.Name, &p.Description, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProject applies the non-nil fields. A nil pointer leaves the column
// untouched.
func (db *DB) UpdateProject(ctx context.Context, id string, name, description, status *string) error {
	_, err := db.Pool.Exec(ctx, `
		UPDATE projects SET
			name        = COALESCE($1, name),
			description = COALESCE($2, description),
			status      = COALESCE($3, status),
			updated_at  = NOW()
		WHERE id = $4
	`, name, description, status, id)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	return nil
}

// DeleteProject soft-deletes a project.
func (db *DB) DeleteProject(ctx context.Context, id string) error {
	_, err := db.Pool.Exec(ctx, `
		UPDATE projects SET status = 'deleted', updated_at = NOW() WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return nil
}

// ── Workflows ───────────────────────────────────────────────

const workflowCols = `id, COALESCE(project_id, ''), name, COALESCE(description, ''), graph_json, status, created_at, updated_at`

// ListWorkflows returns non-archived workflows, newest first.
func (db *DB) ListWorkflows(ctx context.Context) ([]models.Workflow, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT `+workflowCols+` FROM workflows
		WHERE status != 'archived' ORDER BY created_at DESC LIMIT 100
	`)
	if err != nil {
		return nil, fmt.Errorf("querying workflows: %w", err)
	}
	defer rows.Close()

	var results []models.Workflow
	for rows.Next() {
		var w models.Workflow
		if err := rows.Scan(&w.ID, &w.ProjectID, &w.Name, &w.Description, &w.GraphJSON, &w.Status, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning workflow: %w", err)
		}
		results = append(results, w)
	}
	return results, rows.Err()
}

// CreateWorkflow inserts a new workflow row.
func (db *DB) CreateWorkflow(ctx context.Context, w *models.Workflow) error {
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO workflows (id, project_id, name, description, graph_json, status, created_at, updated_at)
		VALUES ($1, NULLIF($2, ''), $3, NULLIF($4, ''), $5, $6, $7, $8)
	`, w.ID, w.ProjectID, w.Name, w.Description, w.GraphJSON, w.Status, w.CreatedAt, w.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inserting workflow: %w", err)
	}
	return nil
}

// GetWorkflow retrieves a non-archived workflow by id.
func (db *DB) GetWorkflow(ctx context.Context, id string) (*models.Workflow, error) {
	var w models.Workflow
	err := db.Pool.QueryRow(ctx, `
		SELECT `+workflowCols+` FROM workflows WHERE id = $1 AND status != 'archived'
	`, id).Scan(&w.ID, &w.ProjectID, &w.Name, &w.Description, &w.GraphJSON, &w.Status, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// UpdateWorkflow applies the non-nil fields.
func (db *DB) UpdateWorkflow(ctx context.Context, id string, name, description, status *string, graphJSON []byte) error {
	_, err := db.Pool.Exec(ctx, `
		UPDATE workflows SET
			name        = COALESCE($1, name),
			description = COALESCE($2, description),
			status      = COALESCE($3, status),
			graph_json  = COALESCE($4, graph_json),
			updated_at  = NOW()
		WHERE id = $5
	`, name, description, status, graphJSON, id)
	if err != nil {
		return fmt.Errorf("updating workflow: %w", err)
	}
	return nil
}

// ArchiveWorkflow soft-deletes a workflow.
func (db *DB) ArchiveWorkflow(ctx context.Context, id string) error {
	_, err := db.Pool.Exec(ctx, `
		UPDATE workflows SET status = 'archived', updated_at = NOW() WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("archiving workflow: %w", err)
	}
	return nil
}

// ── Executions ──────────────────────────────────────────────

const executionCols = `id, COALESCE(workflow_id, ''), COALESCE(project_id, ''), agent_name,
	model_id, task, status, result, started_at, finished_at, created_at`

// InsertExecution records the start of a workflow run.
func (db *DB) InsertExecution(ctx context.Context, e *models.Execution) error {
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO executions (id, workflow_id, project_id, agent_name, model_id, task, status, started_at, created_at)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), $4, $5, $6, $7, $8, $9)
	`, e.ID, e.WorkflowID, e.ProjectID, e.AgentName, e.ModelID, e.Task, e.Status, e.StartedAt, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting execution: %w", err)
	}
	return nil
}

// FinishExecution stores the terminal status and result document.
func (db *DB) FinishExecution(ctx context.Context, id, status string, result []byte, finishedAt time.Time) error {
	_, err := db.Pool.Exec(ctx, `
		UPDATE executions SET status = $1, result = $2, finished_at = $3 WHERE id = $4
	`, status, result, finishedAt, id)
	if err != nil {
		return fmt.Errorf("finishing execution: %w", err)
	}
	return nil
}

// ListExecutions returns the most recent executions.
func (db *DB) ListExecutions(ctx context.Context) ([]models.Execution, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT `+executionCols+` FROM executions ORDER BY created_at DESC LIMIT 100
	`)
	if err != nil {
		return nil, fmt.Errorf("querying executions: %w", err)
	}
	defer rows.Close()

	var results []models.Execution
	for rows.Next() {
		var e models.Execution
		if err := rows.Scan(&e.ID, &e.WorkflowID, &e.ProjectID, &e.AgentName, &e.ModelID,
			&e.Task, &e.Status, &e.Result, &e.StartedAt, &e.FinishedAt, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning execution: %w", err)
		}
		results = append(results, e)
	}
	return results, rows.Err()
}

// GetExecution retrieves an execution by id.
func (db *DB) GetExecution(ctx context.Context, id string) (*models.Execution, error) {
	var e models.Execution
	err := db.Pool.QueryRow(ctx, `
		SELECT `+executionCols+` FROM executions WHERE id = $1
	`, id).Scan(&e.ID, &e.WorkflowID, &e.ProjectID, &e.AgentName, &e.ModelID,
		&e.Task, &e.Status, &e.Result, &e.StartedAt, &e.FinishedAt, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ListExecutionLogs returns log lines for one execution, oldest first.
func (db *DB) ListExecutionLogs(ctx context.Context, executionID string) ([]models.ExecutionLog, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, execution_id, level, message, created_at
		FROM execution_logs WHERE execution_id = $1 ORDER BY created_at ASC
	`, executionID)
	if err != nil {
		return nil, fmt.Errorf("querying execution logs: %w", err)
	}
	defer rows.Close()

	var results []models.ExecutionLog
	for rows.Next() {
		var l models.ExecutionLog
		if err := rows.Scan(&l.ID, &l.ExecutionID, &l.Level, &l.Message, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning execution log: %w", err)
		}
		results = append(results, l)
	}
	return results, rows.Err()
}

// ── Audio files ─────────────────────────────────────────────

const audioCols = `id, COALESCE(project_id, ''), storage_key, filename, file_type, size_bytes, status, created_at, updated_at`

// InsertAudioFile records metadata for an uploaded blob.
func (db *DB) InsertAudioFile(ctx context.Context, f *models.AudioFile) error {
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO audio_files (id, project_id, storage_key, filename, file_type, size_bytes, status, created_at, updated_at)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8, $9)
	`, f.ID, f.ProjectID, f.StorageKey, f.Filename, f.FileType, f.SizeBytes, f.Status, f.CreatedAt, f.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inserting audio file: %w", err)
	}
	return nil
}

// ListAudioFiles returns active library entries, newest first.
func (db *DB) ListAudioFiles(ctx context.Context) ([]models.AudioFile, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT `+audioCols+` FROM audio_files
		WHERE status = 'active' ORDER BY created_at DESC LIMIT 100
	`)
	if err != nil {
		return nil, fmt.Errorf("querying audio files: %w", err)
	}
	defer rows.Close()

	var results []models.AudioFile
	for rows.Next() {
		var f models.AudioFile
		if err := rows.Scan(&f.ID, &f.ProjectID, &f.StorageKey, &f.Filename, &f.FileType,
			&f.SizeBytes, &f.Status, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning audio file: %w", err)
		}
		results = append(results, f)
	}
	return results, rows.Err()
}

// GetAudioFile retrieves an active library entry by id.
func (db *DB) GetAudioFile(ctx context.Context, id string) (*models.AudioFile, error) {
	var f models.AudioFile
	err := db.Pool.QueryRow(ctx, `
		SELECT `+audioCols+` FROM audio_files WHERE id = $1 AND status = 'active'
	`, id).Scan(&f.ID, &f.ProjectID, &f.StorageKey, &f.Filename, &f.FileType,
		&f.SizeBytes, &f.Status, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// DeleteAudioFile soft-deletes a library entry.
func (db *DB) DeleteAudioFile(ctx context.Context, id string) error {
	_, err := db.Pool.Exec(ctx, `
		UPDATE audio_files SET status = 'deleted', updated_at = NOW() WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("deleting audio file: %w", err)
	}
	return nil
}

// ── Notifications ───────────────────────────────────────────

// ListNotifications returns the most recent notifications.
func (db *DB) ListNotifications(ctx context.Context) ([]models.Notification, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, kind, title, COALESCE(body, ''), read, created_at
		FROM notifications ORDER BY created_at DESC LIMIT 50
	`)
	if err != nil {
		return nil, fmt.Errorf("querying notifications: %w", err)
	}
	defer rows.Close()

	var results []models.Notification
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.Kind, &n.Title, &n.Body, &n.Read, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning notification: %w", err)
		}
		results = append(results, n)
	}
	return results, rows.Err()
}

// MarkNotificationsRead flags the given notification ids as read.
func (db *DB) MarkNotificationsRead(ctx context.Context, ids []string) error {
	_, err := db.Pool.Exec(ctx, `
		UPDATE notifications SET read = TRUE WHERE id = ANY($1)
	`, ids)
	if err != nil {
		return fmt.Errorf("marking notifications read: %w", err)
	}
	return nil
}

// ── Settings ────────────────────────────────────────────────

// GetSettings returns all settings keyed by name.
func (db *DB) GetSettings(ctx context.Context) ([]models.Setting, error) {
	rows, err := db.Pool.Query(ctx, `SELECT id, key, value_json, updated_at FROM settings`)
	if err != nil {
		return nil, fmt.Errorf("querying settings: %w", err)
	}
	defer rows.Close()

	var results []models.Setting
	for rows.Next() {
		var s models.Setting
		if err := rows.Scan(&s.ID, &s.Key, &s.ValueJSON, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning setting: %w", err)
		}
		results = append(results, s)
	}
	return results, rows.Err()
}

// UpsertSetting creates or replaces the value for a settings key.
func (db *DB) UpsertSetting(ctx context.Context, s *models.Setting) error {
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO settings (id, key, value_json, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (key) DO UPDATE
		SET value_json = EXCLUDED.value_json, updated_at = EXCLUDED.updated_at
	`, s.ID, s.Key, s.ValueJSON, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upserting setting: %w", err)
	}
	return nil
}
