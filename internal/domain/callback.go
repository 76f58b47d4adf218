package domain

import (
	"fmt"
	"strings"
)

type ActionKind string

const (
	ActionAccept ActionKind = "accept"
	ActionChange ActionKind = "change"
	ActionPath   ActionKind = "path"
	ActionCustom ActionKind = "custom"
	ActionCopy   ActionKind = "copy"
	ActionBack   ActionKind = "back"
)

type PathType string

const (
	PathTypeMovies  PathType = "movies"
	PathTypeShows   PathType = "shows"
	PathTypeGeneral PathType = "general"
)

func ParsePathType(s string) (PathType, error) {
	switch PathType(s) {
	case PathTypeMovies, PathTypeShows, PathTypeGeneral:
		return PathType(s), nil
	}
	return "", fmt.Errorf("%w: path type %q", ErrUnknownAction, s)
}

// Action is a decoded callback button. PathType is only set for ActionPath.
type Action struct {
	Kind     ActionKind
	JobID    string
	PathType PathType
}

// ParseAction decodes the "action:jobId[:param]" wire format.
func ParseAction(data string) (Action, error) {
	parts := strings.Split(data, ":")
	if len(parts) < 2 || parts[1] == "" {
		return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, data)
	}

	a := Action{Kind: ActionKind(parts[0]), JobID: parts[1]}
	switch a.Kind {
	case ActionAccept, ActionChange, ActionCustom, ActionCopy, ActionBack:
		if len(parts) != 2 {
			return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, data)
		}
	case ActionPath:
		if len(parts) != 3 {
			return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, data)
		}
		pt, err := ParsePathType(parts[2])
		if err != nil {
			return Action{}, err
		}
		a.PathType = pt
	default:
		return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, data)
	}
	return a, nil
}

func (a Action) Encode() string {
	if a.Kind == ActionPath {
		return fmt.Sprintf("%s:%s:%s", a.Kind, a.JobID, a.PathType)
	}
	return fmt.Sprintf("%s:%s", a.Kind, a.JobID)
}

func NewAction(kind ActionKind, jobID string) Action {
	return Action{Kind: kind, JobID: jobID}
}

func NewPathAction(jobID string, pt PathType) Action {
	return Action{Kind: ActionPath, JobID: jobID, PathType: pt}
}
