package service

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/campushub/studenthub/internal/domain"
	"github.com/campushub/studenthub/internal/kv"
	apperrors "github.com/campushub/studenthub/pkg/util"
)

const announcementLimit = 10

// CatalogService serves the public resource, department and announcement
// listings backed by prefix scans over the key-value store.
type CatalogService struct {
	store kv.Store
}

// NewCatalogService constructs the service.
func NewCatalogService(store kv.Store) *CatalogService {
	return &CatalogService{store: store}
}

// ListResources returns every catalog resource.
func (s *CatalogService) ListResources(ctx context.Context) ([]domain.Resource, error) {
	raws, err := s.store.GetByPrefix(ctx, kv.ResourcePrefix)
	if err != nil {
		return nil, err
	}
	resources := make([]domain.Resource, 0, len(raws))
	for _, raw := range raws {
		var resource domain.Resource
		if err := json.Unmarshal(raw, &resource); err != nil {
			continue
		}
		resources = append(resources, resource)
	}
	sort.Slice(resources, func(i, j int) bool { return resources[i].ID < resources[j].ID })
	return resources, nil
}

// DownloadResource increments the download counter and returns the updated
// record. Read-modify-write on a single key; concurrent downloads may
// undercount.
func (s *CatalogService) DownloadResource(ctx context.Context, resourceID string) (*domain.Resource, error) {
	var resource domain.Resource
	found, err := s.store.Get(ctx, kv.ResourceKey(resourceID), &resource)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.NewNotFound("Resource")
	}
	resource.Downloads++
	if err := s.store.Set(ctx, kv.ResourceKey(resourceID), &resource); err != nil {
		return nil, err
	}
	return &resource, nil
}

// ListDepartments returns the department directory.
func (s *CatalogService) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	raws, err := s.store.GetByPrefix(ctx, kv.DepartmentPrefix)
	if err != nil {
		return nil, err
	}
	departments := make([]domain.Department, 0, len(raws))
	for _, raw := range raws {
		var department domain.Department
		if err := json.Unmarshal(raw, &department); err != nil {
			continue
		}
		departments = append(departments, department)
	}
	sort.Slice(departments, func(i, j int) bool { return departments[i].ID < departments[j].ID })
	return departments, nil
}

// ListAnnouncements returns the most recent announcements, newest first.
func (s *CatalogService) ListAnnouncements(ctx context.Context) ([]domain.Announcement, error) {
	raws, err := s.store.GetByPrefix(ctx, kv.AnnouncementPrefix)
	if err != nil {
		return nil, err
	}
	announcements := make([]domain.Announcement, 0, len(raws))
	for _, raw := range raws {
		var announcement domain.Announcement
		if err := json.Unmarshal(raw, &announcement); err != nil {
			continue
		}
		announcements = append(announcements, announcement)
	}
	sort.Slice(announcements, func(i, j int) bool {
		return announcements[i].Timestamp.After(announcements[j].Timestamp)
	})
	if len(announcements) > announcementLimit {
		announcements = announcements[:announcementLimit]
	}
	return announcements, nil
}

// SeedSampleData loads the demo resources and departments used by fresh
// installations.
func (s *CatalogService) SeedSampleData(ctx context.Context) error {
	for _, resource := range sampleResources {
		if err := s.store.Set(ctx, kv.ResourceKey(resource.ID), resource); err != nil {
			return err
		}
	}
	for _, department := range sampleDepartments {
		if err := s.store.Set(ctx, kv.DepartmentKey(department.ID), department); err != nil {
			return err
		}
	}
	return nil
}

var sampleResources = []domain.Resource{
	{
		ID:          "res-1",
		Title:       "Academic Writing Guide",
		Department:  "Academic Support",
		Type:        "PDF",
		Downloads:   1243,
		Description: "Comprehensive guide covering essay structure, citations, and research methods",
		Tags:        []string{"Writing", "Research", "APA"},
	},
	{
		ID:          "res-2",
		Title:       "Resume Templates 2024",
		Department:  "Career Services",
		Type:        "Download",
		Downloads:   892,
		Description: "Professional resume templates for various industries and career levels",
		Tags:        []string{"Career", "Resume", "Templates"},
	},
	{
		ID:          "res-3",
		Title:       "Stress Management Workshop",
		Department:  "Student Wellness",
		Type:        "Video",
		Downloads:   567,
		Description: "Recorded session on mindfulness techniques and stress reduction strategies",
		Tags:        []string{"Wellness", "Mental Health", "Workshop"},
	},
}

var sampleDepartments = []domain.Department{
	{
		ID:           "dept-1",
		Name:         "Academic Support",
		Description:  "Tutoring, study skills, and academic advising services",
		Contact:      "academic@university.edu",
		Phone:        "(555) 123-4501",
		Location:     "Building A, Room 201",
		Hours:        "Mon-Fri: 8am-6pm",
		Services:     []string{"Tutoring", "Writing Center", "Study Groups", "Academic Advising"},
		Staff:        12,
		ResponseTime: "24 hours",
		Available:    true,
	},
	{
		ID:           "dept-2",
		Name:         "Career Services",
		Description:  "Career counseling, resume reviews, and job placement assistance",
		Contact:      "careers@university.edu",
		Phone:        "(555) 123-4502",
		Location:     "Building B, Room 105",
		Hours:        "Mon-Fri: 9am-5pm",
		Services:     []string{"Resume Reviews", "Mock Interviews", "Job Board", "Career Fairs"},
		Staff:        8,
		ResponseTime: "48 hours",
		Available:    true,
	},
}
