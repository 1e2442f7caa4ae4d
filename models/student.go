// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Student is the header entity of a document. Every Id may have at most one
// active and at most one draft representation at the remote service; the two
// are told apart by IsActiveEntity.
type Student struct {
	// Id is the opaque identifier generated by the caller for new documents.
	Id string `json:"Id"`

	// Firstname is serialised as "firstname" to match the remote service.
	Firstname string `json:"firstname"`
	Lastname  string `json:"Lastname"`
	Age       int    `json:"Age"`
	Course    string `json:"Course"`
	Gender    string `json:"Gender"`
	Status    bool   `json:"Status"`

	// IsActiveEntity reports which representation this value was read from.
	// It is ignored on create requests.
	IsActiveEntity bool `json:"IsActiveEntity"`

	// HasDraftEntity is true when a draft exists next to the active instance.
	// Only meaningful on values read from the active representation.
	HasDraftEntity bool `json:"HasDraftEntity"`

	// Attachments is the ordered child collection. On reads it is only
	// populated when the attachments were requested explicitly.
	Attachments []Attachment `json:"_Attachments,omitempty"`

	// DraftLastChangedAt is set by the service on draft instances.
	DraftLastChangedAt *time.Time `json:"DraftLastChangedAt,omitempty"`
}

// Clone returns a deep copy of s, including attachment content.
func (s Student) Clone() Student {
	out := s
	if s.Attachments != nil {
		out.Attachments = make([]Attachment, len(s.Attachments))
		for i, a := range s.Attachments {
			out.Attachments[i] = a.Clone()
		}
	}
	if s.DraftLastChangedAt != nil {
		t := *s.DraftLastChangedAt
		out.DraftLastChangedAt = &t
	}
	return out
}

// Attachment is a child entity of a Student keyed by AttachId. It exists only in
// the context of its parent's draft or active representation.
type Attachment struct {
	AttachId string `json:"AttachId"`
	Comments string `json:"Comments"`
	Filename string `json:"Filename"`
	Mimetype string `json:"Mimetype"`

	// Content is the binary payload, base64 encoded on the wire.
	Content []byte `json:"Attachment,omitempty"`

	// MediaReadLink is the link to the content relative to the service root,
	// as announced by the service.
	MediaReadLink string `json:"Attachment@odata.mediaReadLink,omitempty"`

	// MediaContentType is the content type announced for the media link.
	MediaContentType string `json:"Attachment@odata.mediaContentType,omitempty"`

	// MediaURL is the absolute media link. Client-side only.
	MediaURL string `json:"-"`
}

// Clone returns a deep copy of a.
func (a Attachment) Clone() Attachment {
	out := a
	if a.Content != nil {
		out.Content = append([]byte(nil), a.Content...)
	}
	return out
}

// AttachmentEntry is an attachment read from a remote child collection together
// with the resource path addressing it.
type AttachmentEntry struct {
	Path       string
	Attachment Attachment
}

// Names of the scalar header fields as serialised by the service.
const (
	FieldFirstname = "firstname"
	FieldLastname  = "Lastname"
	FieldAge       = "Age"
	FieldCourse    = "Course"
	FieldGender    = "Gender"
	FieldStatus    = "Status"
)

// FieldValue is one scalar field update.
type FieldValue struct {
	Name  string
	Value any
}

// ScalarFields returns the six scalar fields of s in write order: firstname,
// Lastname, Age, Course, Gender, Status.
func (s Student) ScalarFields() []FieldValue {
	return []FieldValue{
		{Name: FieldFirstname, Value: s.Firstname},
		{Name: FieldLastname, Value: s.Lastname},
		{Name: FieldAge, Value: s.Age},
		{Name: FieldCourse, Value: s.Course},
		{Name: FieldGender, Value: s.Gender},
		{Name: FieldStatus, Value: s.Status},
	}
}
