package output

import (
	"github.com/iancoleman/orderedmap"
)

// expandResultDocument builds the JSON document for expand results.
//
// Struct encoding would either emit every component key for every
// spec or leave key order to field declaration. Building the document
// through an ordered map keeps component keys in canonical constraint
// order while omitting the components a spec does not constrain.
//
// Parameters:
//   - result: Expand result data to convert
//
// Returns:
//   - *orderedmap.OrderedMap: The document ready for JSON encoding
func expandResultDocument(result *ExpandResult) *orderedmap.OrderedMap {
	doc := orderedmap.New()

	summary := orderedmap.New()
	summary.Set("manifest", result.Summary.Manifest)
	summary.Set("list", result.Summary.List)
	summary.Set("total_specs", result.Summary.TotalSpecs)
	doc.Set("summary", summary)

	specs := make([]*orderedmap.OrderedMap, 0, len(result.Specs))
	for _, entry := range result.Specs {
		specs = append(specs, expandEntryObject(entry))
	}
	doc.Set("specs", specs)

	if len(result.Warnings) > 0 {
		doc.Set("warnings", result.Warnings)
	}
	return doc
}

// expandEntryObject converts one expanded spec into a JSON object
// with its components in canonical constraint order: package,
// versions, variants, compiler, hash, dependencies, then the full
// spec string.
func expandEntryObject(entry ExpandEntry) *orderedmap.OrderedMap {
	obj := orderedmap.New()
	obj.Set("package", entry.Package)
	if entry.Versions != "" {
		obj.Set("versions", entry.Versions)
	}
	if entry.Variants != "" {
		obj.Set("variants", entry.Variants)
	}
	if entry.Compiler != "" {
		obj.Set("compiler", entry.Compiler)
	}
	if entry.Hash != "" {
		obj.Set("hash", entry.Hash)
	}
	if entry.Dependencies != "" {
		obj.Set("dependencies", entry.Dependencies)
	}
	obj.Set("spec", entry.Spec)
	return obj
}
