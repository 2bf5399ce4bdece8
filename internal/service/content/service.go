// internal/service/content/service.go
package content

import (
	"context"
	"fmt"

	"farepass-service/internal/domain/content"
	xerrors "farepass-service/internal/pkg/errors"
	"farepass-service/internal/repository/postgres"

	"go.uber.org/zap"
)

type ContentService struct {
	faqRepo  *postgres.FAQRepository
	pageRepo *postgres.PageRepository
	logger   *zap.Logger
}

func NewContentService(faqRepo *postgres.FAQRepository, pageRepo *postgres.PageRepository, logger *zap.Logger) *ContentService {
	return &ContentService{faqRepo: faqRepo, pageRepo: pageRepo, logger: logger}
}

// ========== Sections ==========

func (s *ContentService) CreateSection(ctx context.Context, req *content.CreateSectionRequest) (*content.FAQSection, error) {
	section := &content.FAQSection{
		Slug:      req.Slug,
		Title:     req.Title,
		SortOrder: req.SortOrder,
	}
	if err := s.faqRepo.CreateSection(ctx, section); err != nil {
		return nil, err
	}
	s.logger.Info("faq section created", zap.Int64("section_id", section.ID), zap.String("slug", section.Slug))
	return section, nil
}

func (s *ContentService) ListSections(ctx context.Context) ([]content.FAQSection, error) {
	return s.faqRepo.ListSections(ctx)
}

func (s *ContentService) UpdateSection(ctx context.Context, id int64, req *content.UpdateSectionRequest) error {
	sections, err := s.faqRepo.ListSections(ctx)
	if err != nil {
		return err
	}
	var section *content.FAQSection
	for i := range sections {
		if sections[i].ID == id {
			section = &sections[i]
			break
		}
	}
	if section == nil {
		return xerrors.ErrNotFound
	}

	if req.Title != nil {
		section.Title = *req.Title
	}
	if req.SortOrder != nil {
		section.SortOrder = *req.SortOrder
	}

	if err := s.faqRepo.UpdateSection(ctx, id, section); err != nil {
		return err
	}
	s.logger.Info("faq section updated", zap.Int64("section_id", id))
	return nil
}

func (s *ContentService) DeleteSection(ctx context.Context, id int64) error {
	if err := s.faqRepo.DeleteSection(ctx, id); err != nil {
		return err
	}
	s.logger.Info("faq section deleted", zap.Int64("section_id", id))
	return nil
}

// ========== FAQ items ==========

// SaveFAQItem creates or updates (id > 0) an FAQ item and applies its
// translation plan. The main record and the translations are sequential,
// independently-failable writes: a translation failure does not roll back
// the item. Failed locales come back so callers can report partial success.
func (s *ContentService) SaveFAQItem(ctx context.Context, id int64, req *content.SaveFAQItemRequest) (*content.FAQItem, []string, error) {
	// The default locale mirrors into the main record.
	if body, ok := req.Translations[content.DefaultLocale]; ok {
		if body.Question != "" {
			req.Question = body.Question
		}
		if body.Answer != "" {
			req.Answer = body.Answer
		}
	}

	item := &content.FAQItem{
		ID:          id,
		SectionID:   req.SectionID,
		Question:    req.Question,
		Answer:      req.Answer,
		SortOrder:   req.SortOrder,
		IsPublished: req.IsPublished,
	}

	if id > 0 {
		if err := s.faqRepo.UpdateItem(ctx, id, item); err != nil {
			return nil, nil, err
		}
	} else {
		if err := s.faqRepo.CreateItem(ctx, item); err != nil {
			return nil, nil, err
		}
	}

	translations := req.Translations
	if translations == nil {
		translations = map[string]content.TranslationBody{}
	}
	if _, ok := translations[content.DefaultLocale]; !ok {
		translations[content.DefaultLocale] = content.TranslationBody{
			Question: item.Question,
			Answer:   item.Answer,
		}
	}

	failed := s.applyFAQPlan(ctx, item.ID, translations)

	s.logger.Info("faq item saved",
		zap.Int64("item_id", item.ID),
		zap.Int("translation_failures", len(failed)),
	)

	saved, err := s.GetFAQItem(ctx, item.ID)
	if err != nil {
		return item, failed, nil
	}
	return saved, failed, nil
}

func (s *ContentService) applyFAQPlan(ctx context.Context, itemID int64, translations map[string]content.TranslationBody) []string {
	var failed []string
	for _, op := range PlanTranslationSave(KindFAQ, translations) {
		var err error
		switch op.Action {
		case ActionUpsert:
			err = s.faqRepo.UpsertTranslation(ctx, itemID, op.Locale, op.Body)
		case ActionDelete:
			err = s.faqRepo.DeleteTranslation(ctx, itemID, op.Locale)
		}
		if err != nil {
			s.logger.Error("faq translation write failed",
				zap.Int64("item_id", itemID),
				zap.String("locale", op.Locale),
				zap.Error(err),
			)
			failed = append(failed, op.Locale)
		}
	}
	return failed
}

// SaveFAQTranslations applies a translation batch to an existing item.
func (s *ContentService) SaveFAQTranslations(ctx context.Context, itemID int64, req *content.TranslationBatchRequest) ([]string, error) {
	item, err := s.faqRepo.FindItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if body, ok := req.Translations[content.DefaultLocale]; ok && body.Question != "" && body.Answer != "" {
		item.Question = body.Question
		item.Answer = body.Answer
		if err := s.faqRepo.UpdateItem(ctx, itemID, item); err != nil {
			return nil, fmt.Errorf("failed to mirror default locale: %w", err)
		}
	}

	return s.applyFAQPlan(ctx, itemID, req.Translations), nil
}

func (s *ContentService) GetFAQItem(ctx context.Context, id int64) (*content.FAQItem, error) {
	item, err := s.faqRepo.FindItem(ctx, id)
	if err != nil {
		return nil, err
	}
	translations, err := s.faqRepo.ListTranslations(ctx, id)
	if err != nil {
		return nil, err
	}
	item.Translations = translations
	return item, nil
}

func (s *ContentService) ListFAQItems(ctx context.Context, sectionID int64, publishedOnly bool) ([]content.FAQItem, error) {
	return s.faqRepo.ListItems(ctx, sectionID, publishedOnly)
}

func (s *ContentService) DeleteFAQItem(ctx context.Context, id int64) error {
	if err := s.faqRepo.DeleteItem(ctx, id); err != nil {
		return err
	}
	s.logger.Info("faq item deleted", zap.Int64("item_id", id))
	return nil
}

// PublicFAQ returns published sections with their published items, for the
// customer-facing site.
func (s *ContentService) PublicFAQ(ctx context.Context) ([]content.FAQSection, map[int64][]content.FAQItem, error) {
	sections, err := s.faqRepo.ListSections(ctx)
	if err != nil {
		return nil, nil, err
	}
	items, err := s.faqRepo.ListItems(ctx, 0, true)
	if err != nil {
		return nil, nil, err
	}

	bySection := map[int64][]content.FAQItem{}
	for _, it := range items {
		bySection[it.SectionID] = append(bySection[it.SectionID], it)
	}
	return sections, bySection, nil
}

// ========== Info pages ==========

// SavePage creates or updates (id > 0) an info page, with the same
// mirror-and-plan semantics as FAQ items.
func (s *ContentService) SavePage(ctx context.Context, id int64, req *content.SavePageRequest) (*content.InfoPage, []string, error) {
	if body, ok := req.Translations[content.DefaultLocale]; ok {
		if body.Title != "" {
			req.Title = body.Title
		}
		if body.Content != "" {
			req.Content = body.Content
		}
		if len(body.Steps) > 0 {
			req.Steps = body.Steps
		}
	}

	page := &content.InfoPage{
		ID:          id,
		Slug:        req.Slug,
		Title:       req.Title,
		Content:     req.Content,
		Steps:       req.Steps,
		IsPublished: req.IsPublished,
	}

	if id > 0 {
		if err := s.pageRepo.Update(ctx, id, page); err != nil {
			return nil, nil, err
		}
	} else {
		if err := s.pageRepo.Create(ctx, page); err != nil {
			return nil, nil, err
		}
	}

	translations := req.Translations
	if translations == nil {
		translations = map[string]content.TranslationBody{}
	}
	if _, ok := translations[content.DefaultLocale]; !ok {
		translations[content.DefaultLocale] = content.TranslationBody{
			Title:   page.Title,
			Content: page.Content,
			Steps:   page.Steps,
		}
	}

	failed := s.applyPagePlan(ctx, page.ID, translations)

	s.logger.Info("page saved",
		zap.Int64("page_id", page.ID),
		zap.String("slug", page.Slug),
		zap.Int("translation_failures", len(failed)),
	)

	saved, err := s.GetPage(ctx, page.ID)
	if err != nil {
		return page, failed, nil
	}
	return saved, failed, nil
}

func (s *ContentService) applyPagePlan(ctx context.Context, pageID int64, translations map[string]content.TranslationBody) []string {
	var failed []string
	for _, op := range PlanTranslationSave(KindPage, translations) {
		var err error
		switch op.Action {
		case ActionUpsert:
			err = s.pageRepo.UpsertTranslation(ctx, pageID, op.Locale, op.Body)
		case ActionDelete:
			err = s.pageRepo.DeleteTranslation(ctx, pageID, op.Locale)
		}
		if err != nil {
			s.logger.Error("page translation write failed",
				zap.Int64("page_id", pageID),
				zap.String("locale", op.Locale),
				zap.Error(err),
			)
			failed = append(failed, op.Locale)
		}
	}
	return failed
}

// SavePageTranslations applies a translation batch to an existing page.
func (s *ContentService) SavePageTranslations(ctx context.Context, pageID int64, req *content.TranslationBatchRequest) ([]string, error) {
	page, err := s.pageRepo.FindByID(ctx, pageID)
	if err != nil {
		return nil, err
	}

	if body, ok := req.Translations[content.DefaultLocale]; ok && body.Title != "" && body.Content != "" {
		page.Title = body.Title
		page.Content = body.Content
		if len(body.Steps) > 0 {
			page.Steps = body.Steps
		}
		if err := s.pageRepo.Update(ctx, pageID, page); err != nil {
			return nil, fmt.Errorf("failed to mirror default locale: %w", err)
		}
	}

	return s.applyPagePlan(ctx, pageID, req.Translations), nil
}

func (s *ContentService) GetPage(ctx context.Context, id int64) (*content.InfoPage, error) {
	page, err := s.pageRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.decoratePage(ctx, page)
}

// GetPageBySlug is the public read path; unpublished pages are not found.
func (s *ContentService) GetPageBySlug(ctx context.Context, slug string) (*content.InfoPage, error) {
	page, err := s.pageRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !page.IsPublished {
		return nil, xerrors.ErrNotFound
	}
	return s.decoratePage(ctx, page)
}

func (s *ContentService) decoratePage(ctx context.Context, page *content.InfoPage) (*content.InfoPage, error) {
	translations, err := s.pageRepo.ListTranslations(ctx, page.ID)
	if err != nil {
		return nil, err
	}
	page.Translations = translations
	page.Steps = EnsureStepsPlaceholder(page.Steps)
	return page, nil
}

func (s *ContentService) ListPages(ctx context.Context, publishedOnly bool) ([]content.InfoPage, error) {
	pages, err := s.pageRepo.List(ctx, publishedOnly)
	if err != nil {
		return nil, err
	}
	for i := range pages {
		pages[i].Steps = EnsureStepsPlaceholder(pages[i].Steps)
	}
	return pages, nil
}

func (s *ContentService) DeletePage(ctx context.Context, id int64) error {
	if err := s.pageRepo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("page deleted", zap.Int64("page_id", id))
	return nil
}
