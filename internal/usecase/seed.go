package usecase

import (
	"campus-booking/internal/data/entity"
)

type resourceSeed struct {
	name         string
	resourceType entity.ResourceType
	capacity     int
	location     string
	description  string
}

// campusResources is the static bookable-facility catalog.
var campusResources = []resourceSeed{
	// Sports facilities
	{"Football Ground", entity.ResourceTypeGround, 5000, "Sports Complex", "Main football ground for matches and events"},
	{"Cricket Ground", entity.ResourceTypeGround, 3000, "Sports Complex", "Cricket ground for matches and tournaments"},
	{"Cricket Nets", entity.ResourceTypeGround, 20, "Sports Complex", "Cricket practice nets for training sessions"},
	{"Tennis Court", entity.ResourceTypeGround, 50, "Sports Complex", "Tennis court for sports activities"},
	{"Outdoor Basketball Court", entity.ResourceTypeGround, 200, "Sports Complex", "Outdoor basketball court for games and practice"},
	{"Indoor Multipurpose Court", entity.ResourceTypeGround, 300, "Sports Complex", "Indoor multipurpose court for various sports activities"},
	{"Squash Courts", entity.ResourceTypeGround, 20, "Sports Complex", "Squash courts for individual and group sessions"},
	// Academic Block
	{"Academic Block - Lecture Halls", entity.ResourceTypeLectureHall, 200, "Academic Block", "Lecture halls in Academic Block for classes and events"},
	{"Academic Block - Labs", entity.ResourceTypeLectureHall, 50, "Academic Block", "Laboratory facilities in Academic Block"},
	// FCSE
	{"FCSE - Lecture Halls", entity.ResourceTypeLectureHall, 150, "FCSE Building", "Lecture halls in FCSE building for classes and seminars"},
	{"FCSE - Labs", entity.ResourceTypeLectureHall, 40, "FCSE Building", "Laboratory facilities in FCSE building"},
	// FBS
	{"FBS - Lecture Halls", entity.ResourceTypeLectureHall, 150, "FBS Building", "Lecture halls in FBS building for classes and seminars"},
	{"FBS - Labs", entity.ResourceTypeLectureHall, 40, "FBS Building", "Laboratory facilities in FBS building"},
	// FME
	{"FME - Lecture Halls", entity.ResourceTypeLectureHall, 150, "FME Building", "Lecture halls in FME building for classes and seminars"},
	{"FME - Labs", entity.ResourceTypeLectureHall, 40, "FME Building", "Laboratory facilities in FME building"},
	// FMCE
	{"FMCE - Lecture Halls", entity.ResourceTypeLectureHall, 150, "FMCE Building", "Lecture halls in FMCE building for classes and seminars"},
	{"FMCE - Labs", entity.ResourceTypeLectureHall, 40, "FMCE Building", "Laboratory facilities in FMCE building"},
	// Brabers Building
	{"Brabers Building - Lecture Halls", entity.ResourceTypeLectureHall, 200, "Brabers Building", "Lecture halls in Brabers Building for classes and events"},
	{"Brabers Building - Seminar Halls", entity.ResourceTypeLectureHall, 100, "Brabers Building", "Seminar halls in Brabers Building for presentations and meetings"},
	{"Brabers Building - Exam Halls", entity.ResourceTypeLectureHall, 300, "Brabers Building", "Examination halls in Brabers Building"},
	// Incubation Centre
	{"Incubation Centre - Seminar Halls", entity.ResourceTypeLectureHall, 80, "Incubation Centre", "Seminar halls in Incubation Centre for workshops and presentations"},
}
