package entity

type ResourceType string

const (
	ResourceTypeGround      ResourceType = "ground"
	ResourceTypeLectureHall ResourceType = "lecture_hall"
)

type Resource struct {
	Base
	Name        string       `db:"name"`
	Type        ResourceType `db:"type"`
	Capacity    int          `db:"capacity"`
	Location    string       `db:"location"`
	Description string       `db:"description"`
	IsActive    bool         `db:"is_active"`
}
