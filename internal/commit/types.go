package commit

// DefaultType is used when the model reply names no type
const DefaultType = "chore"

// Type is a conventional commit type
type Type struct {
	Value       string
	Description string
}

// Types lists the accepted commit types in display order
var Types = []Type{
	{Value: "feat", Description: "a new feature"},
	{Value: "fix", Description: "a bug fix"},
	{Value: "init", Description: "initialize the project"},
	{Value: "docs", Description: "documentation only changes"},
	{Value: "style", Description: "formatting with no effect on behavior, e.g. whitespace or semicolons"},
	{Value: "refactor", Description: "a change that neither fixes a bug nor adds a feature"},
	{Value: "perf", Description: "a performance improvement"},
	{Value: "test", Description: "add or correct tests"},
	{Value: "revert", Description: "revert a previous commit"},
	{Value: "build", Description: "build system or packaging changes"},
	{Value: "chore", Description: "maintenance of tooling, dependencies or the build process"},
	{Value: "ci", Description: "continuous integration changes"},
}

// TypeValues returns the values of Types in order
func TypeValues() []string {
	values := make([]string, len(Types))
	for i, t := range Types {
		values[i] = t.Value
	}
	return values
}
