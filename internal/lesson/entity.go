package lesson

type ChapterListResponse struct {
	AvailableChapters []int  `json:"available_chapters"`
	TotalChapters     int    `json:"total_chapters"`
	Description       string `json:"description"`
}

type TitlesRequest struct {
	TargetLanguage string `json:"target_language"`
}

type TitlesResponse struct {
	Message string         `json:"message"`
	Titles  map[int]string `json:"titles"`
}

type GenerateRequest struct {
	TargetLanguage string   `json:"target_language"`
	ModuleTitles   []string `json:"module_titles,omitempty"`
}

type VocabularyItem struct {
	Number  int    `json:"number"`
	English string `json:"english"`
	Target  string `json:"target"`
}

type GrammarConcept struct {
	Topic       string   `json:"topic"`
	Requirement string   `json:"requirement"`
	Examples    []string `json:"examples"`
}

type ModuleContent struct {
	ModuleNumber int              `json:"module_number"`
	Title        string           `json:"title"`
	Vocabulary   []VocabularyItem `json:"vocabulary"`
	Grammar      GrammarConcept   `json:"grammar"`
}

type ChapterContent struct {
	Modules []ModuleContent `json:"modules"`
}

type GenerationInfo struct {
	Model            string            `json:"model"`
	ModulesCount     int               `json:"modules_count"`
	RequestedModules []int             `json:"requested_modules"`
	MatchedTitles    map[string]string `json:"matched_titles,omitempty"`
}

type GenerateResponse struct {
	Message        string          `json:"message"`
	Chapter        *ChapterContent `json:"chapter"`
	GenerationInfo *GenerationInfo `json:"generation_info,omitempty"`
}
