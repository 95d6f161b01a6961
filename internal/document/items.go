package document

import (
	"github.com/google/uuid"

	"cvpress/internal/sanitize"
)

func sanitizeDescription(htmlContent string) string {
	return sanitize.HTML(htmlContent)
}

// 条目级的修改方法。每个子条目带自己的 UUID，编辑面在排序与修改之间
// 能稳定定位它。描述字段的富文本与 section 内容一样在提交时消毒。

// AddExperience 向工作经历 section 追加一条任职记录。
func (d *Document) AddExperience(sectionID string, item ExperienceItem) (ExperienceItem, error) {
	s, ok := d.Sections[sectionID]
	if !ok {
		return ExperienceItem{}, ErrSectionNotFound
	}
	item.ID = uuid.NewString()
	item.Description = sanitizeDescription(item.Description)
	s.Experience = append(s.Experience, item)
	d.Sections[sectionID] = s
	return item, nil
}

// UpdateExperience 原地替换一条任职记录，保留其 id。
func (d *Document) UpdateExperience(sectionID string, item ExperienceItem) error {
	s, ok := d.Sections[sectionID]
	if !ok {
		return ErrSectionNotFound
	}
	for i := range s.Experience {
		if s.Experience[i].ID == item.ID {
			item.Description = sanitizeDescription(item.Description)
			s.Experience[i] = item
			d.Sections[sectionID] = s
			return nil
		}
	}
	return ErrItemNotFound
}

// RemoveExperience 按 id 删除一条任职记录。
func (d *Document) RemoveExperience(sectionID, itemID string) error {
	s, ok := d.Sections[sectionID]
	if !ok {
		return ErrSectionNotFound
	}
	for i := range s.Experience {
		if s.Experience[i].ID == itemID {
			s.Experience = append(s.Experience[:i], s.Experience[i+1:]...)
			d.Sections[sectionID] = s
			return nil
		}
	}
	return ErrItemNotFound
}

// AddEducation 向教育经历 section 追加一条学习记录。
func (d *Document) AddEducation(sectionID string, item EducationItem) (EducationItem, error) {
	s, ok := d.Sections[sectionID]
	if !ok {
		return EducationItem{}, ErrSectionNotFound
	}
	item.ID = uuid.NewString()
	item.Description = sanitizeDescription(item.Description)
	s.Education = append(s.Education, item)
	d.Sections[sectionID] = s
	return item, nil
}

// UpdateEducation 原地替换一条学习记录，保留其 id。
func (d *Document) UpdateEducation(sectionID string, item EducationItem) error {
	s, ok := d.Sections[sectionID]
	if !ok {
		return ErrSectionNotFound
	}
	for i := range s.Education {
		if s.Education[i].ID == item.ID {
			item.Description = sanitizeDescription(item.Description)
			s.Education[i] = item
			d.Sections[sectionID] = s
			return nil
		}
	}
	return ErrItemNotFound
}

// RemoveEducation 按 id 删除一条学习记录。
func (d *Document) RemoveEducation(sectionID, itemID string) error {
	s, ok := d.Sections[sectionID]
	if !ok {
		return ErrSectionNotFound
	}
	for i := range s.Education {
		if s.Education[i].ID == itemID {
			s.Education = append(s.Education[:i], s.Education[i+1:]...)
			d.Sections[sectionID] = s
			return nil
		}
	}
	return ErrItemNotFound
}

// AddLanguage 向语言 section 追加一条语言记录。
func (d *Document) AddLanguage(sectionID string, item LanguageItem) (LanguageItem, error) {
	s, ok := d.Sections[sectionID]
	if !ok {
		return LanguageItem{}, ErrSectionNotFound
	}
	item.ID = uuid.NewString()
	s.Languages = append(s.Languages, item)
	d.Sections[sectionID] = s
	return item, nil
}

// RemoveLanguage 按 id 删除一条语言记录。
func (d *Document) RemoveLanguage(sectionID, itemID string) error {
	s, ok := d.Sections[sectionID]
	if !ok {
		return ErrSectionNotFound
	}
	for i := range s.Languages {
		if s.Languages[i].ID == itemID {
			s.Languages = append(s.Languages[:i], s.Languages[i+1:]...)
			d.Sections[sectionID] = s
			return nil
		}
	}
	return ErrItemNotFound
}
