package domain

// StudyMode represents the interaction mode of a study session.
type StudyMode string

const (
	StudyModeTranslate StudyMode = "TRANSLATE"
	StudyModeChoice    StudyMode = "CHOICE"
	StudyModeSentence  StudyMode = "SENTENCE"
	StudyModeDescribe  StudyMode = "DESCRIBE"
	StudyModeMixed     StudyMode = "MIXED"
)

func (m StudyMode) String() string { return string(m) }

func (m StudyMode) IsValid() bool {
	switch m {
	case StudyModeTranslate, StudyModeChoice, StudyModeSentence, StudyModeDescribe, StudyModeMixed:
		return true
	}
	return false
}

// LevelFilter narrows the card pool before session selection.
type LevelFilter string

const (
	LevelFilterAll         LevelFilter = "ALL"
	LevelFilterLevel1      LevelFilter = "LEVEL_1"
	LevelFilterLevel2      LevelFilter = "LEVEL_2"
	LevelFilterLevel3      LevelFilter = "LEVEL_3"
	LevelFilterLevel4      LevelFilter = "LEVEL_4"
	LevelFilterProblematic LevelFilter = "PROBLEMATIC"
)

func (f LevelFilter) String() string { return string(f) }

func (f LevelFilter) IsValid() bool {
	switch f {
	case LevelFilterAll, LevelFilterLevel1, LevelFilterLevel2,
		LevelFilterLevel3, LevelFilterLevel4, LevelFilterProblematic:
		return true
	}
	return false
}

// Level returns the mastery level a single-level filter targets,
// or 0 when the filter is not level-specific.
func (f LevelFilter) Level() int {
	switch f {
	case LevelFilterLevel1:
		return 1
	case LevelFilterLevel2:
		return 2
	case LevelFilterLevel3:
		return 3
	case LevelFilterLevel4:
		return 4
	}
	return 0
}
