package subject

// RecommendSubject is a subject recommended on the home page
// (sms_home_recommend_subject).
type RecommendSubject struct {
	ID              int64  `json:"id,omitempty"`
	SubjectID       int64  `json:"subjectId"`
	SubjectName     string `json:"subjectName"`
	RecommendStatus int    `json:"recommendStatus"`
	Sort            int    `json:"sort"`
}

func (s RecommendSubject) RecordID() int64 { return s.ID }
