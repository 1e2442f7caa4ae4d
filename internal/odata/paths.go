// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package odata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-draft-keeper/models"
)

// Names shared by client and service.
const (
	// AttachmentsRelation is the navigation property holding attachments.
	AttachmentsRelation = "_Attachments"

	// MediaProperty is the stream property of an attachment.
	MediaProperty = "Attachment"

	// ActionEdit materialises a draft from an active instance.
	ActionEdit = "Edit"

	// ActionActivate commits a draft into the active instance.
	ActionActivate = "Activate"

	// ParamPreserveChanges is the only parameter of ActionEdit.
	ParamPreserveChanges = "PreserveChanges"

	keyID             = "Id"
	keyIsActiveEntity = "IsActiveEntity"
	keyAttachID       = "AttachId"
)

// Resource is a parsed resource path.
type Resource struct {
	// EntitySet is the first segment, e.g. "Students".
	EntitySet string

	// Key is set when the first segment carries a key predicate.
	Key *models.EntityKey

	// Navigation is the navigation property following the entity, if any.
	Navigation string

	// ChildKey is the AttachId of a single child, if addressed.
	ChildKey string

	// Namespace and Action are set for bound action segments "NS.Action".
	Namespace string
	Action    string

	// Media is true when the path addresses the stream of a child.
	Media bool
}

// IsCollection reports whether r addresses the entity set itself.
func (r Resource) IsCollection() bool {
	return r.Key == nil
}

// IsEntity reports whether r addresses exactly one header entity.
func (r Resource) IsEntity() bool {
	return r.Key != nil && r.Navigation == "" && r.Action == ""
}

// IsChildCollection reports whether r addresses a navigation collection.
func (r Resource) IsChildCollection() bool {
	return r.Navigation != "" && r.ChildKey == "" && !r.Media
}

// IsChild reports whether r addresses one child entity.
func (r Resource) IsChild() bool {
	return r.ChildKey != "" && !r.Media
}

// Quote renders s as an OData string literal.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// KeyPredicate renders the key predicate of k, e.g.
// "(Id='42',IsActiveEntity=true)".
func KeyPredicate(k models.EntityKey) string {
	return fmt.Sprintf("(%s=%s,%s=%t)", keyID, Quote(k.Id), keyIsActiveEntity, k.IsActiveEntity)
}

// CollectionPath returns the path of an entity set.
func CollectionPath(entitySet string) string {
	return "/" + strings.Trim(entitySet, "/")
}

// EntityPath returns the path of one representation of a document.
func EntityPath(entitySet string, k models.EntityKey) string {
	return CollectionPath(entitySet) + KeyPredicate(k)
}

// NavigationPath returns the path of a navigation collection under an entity.
func NavigationPath(entityPath, relation string) string {
	return strings.TrimRight(entityPath, "/") + "/" + relation
}

// ChildPath returns the path of one attachment under an entity.
func ChildPath(entityPath, relation, attachID string) string {
	return NavigationPath(entityPath, relation) + "(" + keyAttachID + "=" + Quote(attachID) + ")"
}

// ActionPath returns the path of a bound action on an entity.
func ActionPath(entityPath, namespace, action string) string {
	if namespace == "" {
		return strings.TrimRight(entityPath, "/") + "/" + action
	}
	return strings.TrimRight(entityPath, "/") + "/" + namespace + "." + action
}

// MediaPath returns the path of the stream property of a child.
func MediaPath(childPath string) string {
	return strings.TrimRight(childPath, "/") + "/" + MediaProperty
}

// ParsePath parses a resource path relative to the service root. A leading
// slash is optional.
func ParsePath(path string) (Resource, error) {
	var res Resource

	segments := splitSegments(strings.TrimPrefix(path, "/"))
	if len(segments) == 0 || segments[0] == "" {
		return res, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	if len(segments) > 4 {
		return res, fmt.Errorf("%w: too many segments in %q", ErrInvalidPath, path)
	}

	name, predicate, err := splitPredicate(segments[0])
	if err != nil {
		return res, err
	}
	res.EntitySet = name
	if predicate == "" {
		if len(segments) > 1 {
			return res, fmt.Errorf("%w: %q: segments after a collection", ErrInvalidPath, path)
		}
		return res, nil
	}

	key, err := parseEntityKey(predicate)
	if err != nil {
		return res, err
	}
	res.Key = &key

	if len(segments) == 1 {
		return res, nil
	}

	second, childPredicate, err := splitPredicate(segments[1])
	if err != nil {
		return res, err
	}

	if ns, action, ok := splitAction(second); ok {
		if childPredicate != "" || len(segments) > 2 {
			return res, fmt.Errorf("%w: %q: action must be the last segment", ErrInvalidPath, path)
		}
		res.Namespace, res.Action = ns, action
		return res, nil
	}

	res.Navigation = second
	if childPredicate == "" {
		if len(segments) > 2 {
			return res, fmt.Errorf("%w: %q: segments after a navigation collection", ErrInvalidPath, path)
		}
		return res, nil
	}

	childKey, err := parseChildKey(childPredicate)
	if err != nil {
		return res, err
	}
	res.ChildKey = childKey

	if len(segments) == 2 {
		return res, nil
	}
	if len(segments) == 3 && segments[2] == MediaProperty {
		res.Media = true
		return res, nil
	}

	return res, fmt.Errorf("%w: %q: unsupported segment %q", ErrInvalidPath, path, segments[2])
}

// splitSegments splits on "/" outside of quoted literals.
func splitSegments(path string) []string {
	var (
		segments []string
		current  strings.Builder
		inQuote  bool
	)
	for i := 0; i < len(path); i++ {
		c := path[i]
		switch {
		case c == '\'':
			inQuote = !inQuote
			current.WriteByte(c)
		case c == '/' && !inQuote:
			segments = append(segments, current.String())
			current.Reset()
		default:
			current.WriteByte(c)
		}
	}
	if current.Len() > 0 || len(segments) == 0 {
		segments = append(segments, current.String())
	}
	return segments
}

func splitPredicate(segment string) (name, predicate string, err error) {
	open := strings.IndexByte(segment, '(')
	if open < 0 {
		return segment, "", nil
	}
	if !strings.HasSuffix(segment, ")") {
		return "", "", fmt.Errorf("%w: unbalanced key predicate in %q", ErrInvalidPath, segment)
	}
	return segment[:open], segment[open+1 : len(segment)-1], nil
}

func splitAction(segment string) (namespace, action string, ok bool) {
	dot := strings.LastIndexByte(segment, '.')
	if dot < 0 {
		if segment == ActionEdit || segment == ActionActivate {
			return "", segment, true
		}
		return "", "", false
	}
	return segment[:dot], segment[dot+1:], true
}

func parseEntityKey(predicate string) (models.EntityKey, error) {
	var (
		key       models.EntityKey
		hasID     bool
		hasActive bool
	)

	pairs, err := splitKeyPairs(predicate)
	if err != nil {
		return key, err
	}

	for name, raw := range pairs {
		switch name {
		case keyID:
			id, err := Unquote(raw)
			if err != nil {
				return key, err
			}
			key.Id, hasID = id, true
		case keyIsActiveEntity:
			active, err := strconv.ParseBool(raw)
			if err != nil {
				return key, fmt.Errorf("%w: IsActiveEntity=%s", ErrInvalidPath, raw)
			}
			key.IsActiveEntity, hasActive = active, true
		default:
			return key, fmt.Errorf("%w: unknown key property %q", ErrInvalidPath, name)
		}
	}

	if !hasID || !hasActive {
		return key, fmt.Errorf("%w: key predicate needs Id and IsActiveEntity", ErrInvalidPath)
	}
	return key, nil
}

func parseChildKey(predicate string) (string, error) {
	pairs, err := splitKeyPairs(predicate)
	if err != nil {
		return "", err
	}
	raw, ok := pairs[keyAttachID]
	if !ok || len(pairs) != 1 {
		return "", fmt.Errorf("%w: child key predicate needs AttachId", ErrInvalidPath)
	}
	return Unquote(raw)
}

func splitKeyPairs(predicate string) (map[string]string, error) {
	pairs := make(map[string]string, 2)

	var (
		parts   []string
		current strings.Builder
		inQuote bool
	)
	for i := 0; i < len(predicate); i++ {
		c := predicate[i]
		switch {
		case c == '\'':
			inQuote = !inQuote
			current.WriteByte(c)
		case c == ',' && !inQuote:
			parts = append(parts, current.String())
			current.Reset()
		default:
			current.WriteByte(c)
		}
	}
	parts = append(parts, current.String())

	for _, part := range parts {
		name, value, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("%w: malformed key pair %q", ErrInvalidPath, part)
		}
		pairs[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}
	return pairs, nil
}

// Unquote parses an OData string literal.
func Unquote(literal string) (string, error) {
	if len(literal) < 2 || literal[0] != '\'' || literal[len(literal)-1] != '\'' {
		return "", fmt.Errorf("%w: expected quoted literal, got %s", ErrInvalidPath, literal)
	}
	return strings.ReplaceAll(literal[1:len(literal)-1], "''", "'"), nil
}
