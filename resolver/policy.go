package resolver

import (
	"github.com/rkbennett/logstash-output-opensearch/errors"
	"github.com/rkbennett/logstash-output-opensearch/options"
	"github.com/rkbennett/logstash-output-opensearch/util"
)

// Document actions supported by the output.
const (
	ActionIndex  = "index"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// externalVersionTypes is the external version-type family; these require
// an explicit version and are incompatible with create and update.
var externalVersionTypes = []string{"external", "external_gt", "external_gte"}

// UpdateOptions carries the update-specific request fields. They are only
// merged into the policy when the action is update.
type UpdateOptions struct {
	// DocAsUpsert indexes the document when it does not exist yet.
	DocAsUpsert bool
	// ScriptedUpsert runs the script whether or not the document exists.
	ScriptedUpsert bool
	// ScriptVarName is the variable the event is bound to in scripts.
	ScriptVarName string
	// ScriptType is the script invocation style (inline, indexed, file).
	ScriptType string
	// ScriptLang is the scripting language.
	ScriptLang string
}

// RequestPolicy is the resolved bulk/update/versioning behavior.
type RequestPolicy struct {
	// Action is the document action submitted in bulk entries.
	Action string
	// VersionType is the versioning mode. Empty means server default.
	VersionType string
	// Version is the explicit version value. Empty means unset.
	Version string
	// DocumentID is the target document id. Empty means auto-assigned.
	DocumentID string
	// Update holds the update-specific fields. Nil for any other action.
	Update *UpdateOptions
}

// resolvePolicy validates the versioning/action combination and builds the
// request policy. Checks run in a fixed order and stop at the first
// violation.
func resolvePolicy(opts options.Options) (*RequestPolicy, error) {
	policy := &RequestPolicy{
		Action:      opts.StringOr("action", ActionIndex),
		VersionType: opts.StringOr("version_type", ""),
		Version:     opts.StringOr("version", ""),
		DocumentID:  opts.StringOr("document_id", ""),
	}

	external := util.StringInSlice(policy.VersionType, externalVersionTypes)

	if external && policy.Version == "" {
		return nil, errors.MissingSetting("version",
			"The 'version' setting is required when using an external version_type")
	}
	if policy.Action == ActionCreate && external {
		return nil, errors.Incompatible(
			"Specifying action => 'create' is not supported with an external version_type")
	}
	if opts.BoolOr("doc_as_upsert", false) && opts.BoolOr("scripted_upsert", false) {
		return nil, errors.Conflicting("doc_as_upsert", "scripted_upsert",
			"The 'doc_as_upsert' and 'scripted_upsert' settings are mutually exclusive")
	}
	if policy.Action == ActionUpdate && policy.DocumentID == "" {
		return nil, errors.MissingSetting("document_id",
			"Specifying action => 'update' requires a 'document_id'")
	}
	if policy.Action == ActionUpdate && external {
		return nil, errors.Incompatible(
			"Specifying action => 'update' is not supported with an external version_type")
	}

	if policy.Action == ActionUpdate {
		policy.Update = &UpdateOptions{
			DocAsUpsert:    opts.BoolOr("doc_as_upsert", false),
			ScriptedUpsert: opts.BoolOr("scripted_upsert", false),
			ScriptVarName:  opts.StringOr("script_var_name", "event"),
			ScriptType:     opts.StringOr("script_type", "inline"),
			ScriptLang:     opts.StringOr("script_lang", "painless"),
		}
	}

	return policy, nil
}
