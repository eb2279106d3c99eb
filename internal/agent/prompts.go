package agent

// SystemMessage sets the role of the model for every suggestion
const SystemMessage = "You are a helpful Git commit message generator."

// CommitPrompt is the user prompt for commit suggestions
const CommitPrompt = `All responses must be written in {{.Language}}.
As a professional Git commit message assistant, generate structured commit information for the following changes, strictly following the Angular commit convention. Follow this process:

1. Change analysis:
- Analyze the changed file paths:
{{range .Files}}  {{.}}
{{end}}
- Review the code diff:
{{.Diff}}
- Identify the core intent of the change (new feature, bug fix, documentation, style adjustment, etc.)
- Locate the affected modules (at most 3 key modules)

2. Decision:
Type selection:
{{range .Types}}  {{printf "%-9s" .Value}}-> {{.Description}}
{{end}}
Scope:
- Infer the module from the file paths (e.g. src/user -> user)
- When several modules are affected pick the most central one or leave it empty
- Use null when there is no clear scope

Subject:
- Imperative mood, lowercase first letter
- No trailing punctuation, at most 50 characters
- Summarize the nature of the change, not a log of operations

3. Output:
- Write the subject in {{.Language}}
- Return only a JSON object with exactly these keys and nothing else:
{
  "type": "required, one of the types above",
  "scope": "optional, module name or null",
  "subject": "required, the commit subject"
}
- Escape special characters so the JSON parses
- If the type cannot be determined use "chore"
`
