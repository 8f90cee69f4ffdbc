package types

// ConvertConfig holds settings for the conversion pipeline.
type ConvertConfig struct {
	// Workers is the maximum number of concurrent file conversions
	// (default 4).
	Workers int `json:"workers" yaml:"workers"`

	// Recursive toggles subdirectory traversal in directory mode. Output
	// and processed paths mirror the source's relative path when set.
	Recursive bool `json:"recursive" yaml:"recursive"`

	// OutputDir is an explicit output root. It is a real filesystem
	// path, absolute or relative to the working directory, and may lie
	// outside the input tree. Empty means the reserved subdirectory
	// named by OutputDirName under the input root.
	OutputDir string `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`

	// OutputDirName is the reserved output subdirectory created under the
	// input root in directory mode (default "markdown"). Ignored when
	// OutputDir is set.
	OutputDirName string `json:"output_dir_name" yaml:"output_dir_name"`

	// ProcessedDirName is the reserved subdirectory that receives
	// successfully converted sources (default "processed").
	ProcessedDirName string `json:"processed_dir_name" yaml:"processed_dir_name"`

	// Sheet restricts spreadsheet conversion to the named sheet.
	// All sheets are converted when empty.
	Sheet string `json:"sheet,omitempty" yaml:"sheet,omitempty"`
}
