package solutionname

const (
	// SettingsLocation is where the panel is registered in the editor's
	// project settings window.
	SettingsLocation = "Project/JetBrains Rider"

	// Label captions the solution name input.
	Label = "Solution Name"

	// HelpText accompanies the input.
	HelpText = `By default, the C# solution name is set to the name of the project's parent folder.

You can change this behavior by filling the field above.
Only letters, digits, underscores and hyphens are allowed.

Leave empty to use the default behaviour.`
)
