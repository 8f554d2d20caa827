package agents

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rstlix0x0/aiassisted/pkg/constants"
	"github.com/rstlix0x0/aiassisted/pkg/errors"
	"github.com/rstlix0x0/aiassisted/pkg/store"
)

// ValidateName checks the agent name format: 1 to 64 characters, lowercase
// alphanumeric and hyphens, no leading, trailing, or consecutive hyphens.
func ValidateName(name string) []error {
	var errs []error

	if name == "" {
		return []error{errors.NewValidationError(name, "name", "name cannot be empty")}
	}

	if len(name) > constants.MaxNameLength {
		errs = append(errs, errors.NewValidationError(name, "name",
			fmt.Sprintf("name exceeds maximum length of %d characters", constants.MaxNameLength)))
	}

	for _, r := range name {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' {
			errs = append(errs, errors.NewValidationError(name, "name",
				"name must contain only lowercase letters, digits, and hyphens"))
			break
		}
	}

	if strings.HasPrefix(name, "-") {
		errs = append(errs, errors.NewValidationError(name, "name", "name cannot start with a hyphen"))
	}
	if strings.HasSuffix(name, "-") {
		errs = append(errs, errors.NewValidationError(name, "name", "name cannot end with a hyphen"))
	}
	if strings.Contains(name, "--") {
		errs = append(errs, errors.NewValidationError(name, "name", "name cannot contain consecutive hyphens"))
	}

	return errs
}

// ValidateDescription checks that the description is present and within the
// length limit.
func ValidateDescription(name, description string) []error {
	var errs []error

	if description == "" {
		errs = append(errs, errors.NewValidationError(name, "description", "description cannot be empty"))
	}
	if len(description) > constants.MaxDescriptionLength {
		errs = append(errs, errors.NewValidationError(name, "description",
			fmt.Sprintf("description exceeds maximum length of %d characters", constants.MaxDescriptionLength)))
	}

	return errs
}

// ValidateSkillRefs checks that every referenced skill exists as a bundle
// under skillsDir.
func ValidateSkillRefs(st *store.Store, name string, skills []string, skillsDir string) []error {
	var errs []error

	for _, skill := range skills {
		marker := filepath.Join(skillsDir, skill, constants.SkillMarker)
		if !st.Exists(marker) {
			errs = append(errs, errors.NewValidationError(name, "skills",
				fmt.Sprintf("referenced skill %q not found at %s", skill, marker)))
		}
	}

	return errs
}

// Validate runs all validation rules against a parsed agent: name format,
// name-matches-directory, description, and skill references. All violations
// are collected and returned joined, not just the first.
func Validate(st *store.Store, agent *Agent, skillsDir string) error {
	var errs []error

	errs = append(errs, ValidateName(agent.Spec.Name)...)

	dir := filepath.Base(filepath.Dir(agent.SourcePath))
	if dir != "." && dir != "/" && agent.Spec.Name != dir {
		errs = append(errs, errors.NewValidationError(agent.Spec.Name, "name",
			fmt.Sprintf("agent name %q does not match directory name %q", agent.Spec.Name, dir)))
	}

	errs = append(errs, ValidateDescription(agent.Spec.Name, agent.Spec.Description)...)
	errs = append(errs, ValidateSkillRefs(st, agent.Spec.Name, agent.Spec.Skills, skillsDir)...)

	return errors.Join(errs...)
}
