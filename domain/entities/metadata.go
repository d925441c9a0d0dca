package entities

// Metadata this struct contains extra information about a loaded trip table
// + City: city which belongs the data
// + SourceFile: path of the file the data was read from
// + HasEndTime: the source file has an End Time column
// + HasGender: the source file has a Gender column
// + HasBirthYear: the source file has a Birth Year column
type Metadata struct {
	City         string `json:"city"`
	SourceFile   string `json:"source_file"`
	HasEndTime   bool   `json:"has_end_time"`
	HasGender    bool   `json:"has_gender"`
	HasBirthYear bool   `json:"has_birth_year"`
}

func NewMetadata(city string, sourceFile string) Metadata {
	return Metadata{
		City:       city,
		SourceFile: sourceFile,
	}
}

func (m Metadata) GetCity() string {
	return m.City
}

func (m Metadata) GetSourceFile() string {
	return m.SourceFile
}
