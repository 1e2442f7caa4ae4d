// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-draft-keeper/models"
)

const (
	studentsTable    = "students"
	attachmentsTable = "attachments"

	hasDraftColumn = "EXISTS (SELECT 1 FROM students AS d WHERE d.id = students.id AND d.is_active_entity = ?) AS has_draft"
	likeEscape     = `\`
)

var studentColumns = []string{
	"id",
	"is_active_entity",
	"firstname",
	"lastname",
	"age",
	"course",
	"gender",
	"status",
	"draft_last_changed_at",
}

var attachmentColumns = []string{
	"attach_id",
	"comments",
	"filename",
	"mimetype",
	"content",
}

// studentFieldColumns maps the wire names of the scalar fields to columns.
var studentFieldColumns = map[string]string{
	models.FieldFirstname: "firstname",
	models.FieldLastname:  "lastname",
	models.FieldAge:       "age",
	models.FieldCourse:    "course",
	models.FieldGender:    "gender",
	models.FieldStatus:    "status",
}

func keyWhere(key models.EntityKey) sq.Eq {
	return sq.Eq{"id": key.Id, "is_active_entity": key.IsActiveEntity}
}

func ownerWhere(owner models.EntityKey) sq.Eq {
	return sq.Eq{"student_id": owner.Id, "is_active_entity": owner.IsActiveEntity}
}

// containsPattern escapes LIKE wildcards in v and wraps it in %...%.
func containsPattern(v string) string {
	r := strings.NewReplacer(likeEscape, likeEscape+likeEscape, "%", likeEscape+"%", "_", likeEscape+"_")
	return "%" + r.Replace(v) + "%"
}

func containsExpr(column, v string) sq.Sqlizer {
	return sq.Expr(column+" LIKE ? ESCAPE '"+likeEscape+"'", containsPattern(v))
}

// buildSelectStudentsQuery selects the active students matching q ordered by
// id.
func buildSelectStudentsQuery(b sq.StatementBuilderType, q models.StudentQuery) (string, []any, error) {
	query := b.Select(studentColumns...).
		Column(hasDraftColumn, false).
		From(studentsTable).
		Where(sq.Eq{"is_active_entity": true})

	if q.FirstnameContains != "" {
		query = query.Where(containsExpr("firstname", q.FirstnameContains))
	}
	if q.Age != nil {
		query = query.Where(sq.Eq{"age": *q.Age})
	}
	if q.Gender != "" {
		query = query.Where(sq.Eq{"gender": q.Gender})
	}
	if q.CourseContains != "" {
		query = query.Where(containsExpr("course", q.CourseContains))
	}
	if q.Status != nil {
		query = query.Where(sq.Eq{"status": *q.Status})
	}

	return query.OrderBy("id").ToSql()
}

func buildSelectStudentQuery(b sq.StatementBuilderType, key models.EntityKey) (string, []any, error) {
	return b.Select(studentColumns...).
		Column(hasDraftColumn, false).
		From(studentsTable).
		Where(keyWhere(key)).
		ToSql()
}

func buildInsertStudentQuery(b sq.StatementBuilderType, s models.Student) (string, []any, error) {
	return b.Insert(studentsTable).
		Columns(studentColumns...).
		Values(
			s.Id,
			s.IsActiveEntity,
			s.Firstname,
			s.Lastname,
			s.Age,
			s.Course,
			s.Gender,
			s.Status,
			nullTime(s.DraftLastChangedAt),
		).
		ToSql()
}

// buildUpdateStudentQuery sets the given fields and the draft change stamp.
// Field names must already be known; unknown names are reported by the
// caller.
func buildUpdateStudentQuery(b sq.StatementBuilderType, key models.EntityKey, fields []models.FieldValue, changedAt time.Time) (string, []any, error) {
	query := b.Update(studentsTable).Set("draft_last_changed_at", changedAt.UTC())
	for _, f := range fields {
		query = query.Set(studentFieldColumns[f.Name], f.Value)
	}
	return query.Where(keyWhere(key)).ToSql()
}

func buildDeleteStudentQuery(b sq.StatementBuilderType, key models.EntityKey) (string, []any, error) {
	return b.Delete(studentsTable).Where(keyWhere(key)).ToSql()
}

func buildSelectAttachmentsQuery(b sq.StatementBuilderType, owner models.EntityKey) (string, []any, error) {
	return b.Select(attachmentColumns...).
		From(attachmentsTable).
		Where(ownerWhere(owner)).
		OrderBy("attach_id").
		ToSql()
}

func buildSelectAttachmentQuery(b sq.StatementBuilderType, owner models.EntityKey, attachID string) (string, []any, error) {
	return b.Select(attachmentColumns...).
		From(attachmentsTable).
		Where(ownerWhere(owner)).
		Where(sq.Eq{"attach_id": attachID}).
		ToSql()
}

func buildInsertAttachmentQuery(b sq.StatementBuilderType, owner models.EntityKey, a models.Attachment) (string, []any, error) {
	return b.Insert(attachmentsTable).
		Columns("student_id", "is_active_entity", "attach_id", "comments", "filename", "mimetype", "content").
		Values(owner.Id, owner.IsActiveEntity, a.AttachId, a.Comments, a.Filename, a.Mimetype, a.Content).
		ToSql()
}

func buildDeleteAttachmentQuery(b sq.StatementBuilderType, owner models.EntityKey, attachID string) (string, []any, error) {
	return b.Delete(attachmentsTable).
		Where(ownerWhere(owner)).
		Where(sq.Eq{"attach_id": attachID}).
		ToSql()
}

func buildDeleteAttachmentsQuery(b sq.StatementBuilderType, owner models.EntityKey) (string, []any, error) {
	return b.Delete(attachmentsTable).Where(ownerWhere(owner)).ToSql()
}

// buildSelectStaleDraftsQuery selects the ids of drafts last changed before
// cutoff.
func buildSelectStaleDraftsQuery(b sq.StatementBuilderType, cutoff time.Time) (string, []any, error) {
	return b.Select("id").
		From(studentsTable).
		Where(sq.Eq{"is_active_entity": false}).
		Where(sq.Lt{"draft_last_changed_at": cutoff.UTC()}).
		OrderBy("id").
		ToSql()
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}
