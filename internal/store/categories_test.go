package store

import (
	"testing"
	"time"

	"pocketledger/internal/models"
	"pocketledger/internal/testutil"
)

func TestAddCategory(t *testing.T) {
	t.Run("creates_active_category", func(t *testing.T) {
		s, _ := newTestStore(t)

		created, err := s.AddCategory(&models.Category{
			Name:  "Groceries",
			Type:  models.CategoryTypeExpense,
			Color: "#FF5722",
			Icon:  "cart",
		})
		testutil.AssertNoError(t, err)

		if created.ID == "" {
			t.Error("expected an assigned id")
		}
		if !created.IsActive {
			t.Error("expected new category to be active")
		}
	})

	t.Run("rejects_duplicate_name_and_type", func(t *testing.T) {
		s, _ := newTestStore(t)

		_, err := s.AddCategory(&models.Category{Name: "Groceries", Type: models.CategoryTypeExpense})
		testutil.AssertNoError(t, err)

		_, err = s.AddCategory(&models.Category{Name: "Groceries", Type: models.CategoryTypeExpense})
		testutil.AssertAppError(t, err, "DUPLICATE_CATEGORY")
	})

	t.Run("same_name_different_type_allowed", func(t *testing.T) {
		s, _ := newTestStore(t)

		_, err := s.AddCategory(&models.Category{Name: "Gifts", Type: models.CategoryTypeExpense})
		testutil.AssertNoError(t, err)

		_, err = s.AddCategory(&models.Category{Name: "Gifts", Type: models.CategoryTypeIncome})
		testutil.AssertNoError(t, err)
	})

	t.Run("rejects_empty_name", func(t *testing.T) {
		s, _ := newTestStore(t)

		_, err := s.AddCategory(&models.Category{Type: models.CategoryTypeExpense})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("rejects_unknown_type", func(t *testing.T) {
		s, _ := newTestStore(t)

		_, err := s.AddCategory(&models.Category{Name: "Misc", Type: "savings"})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestUpdateCategory(t *testing.T) {
	t.Run("updates_fields", func(t *testing.T) {
		s, db := newTestStore(t)
		created := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)

		updated := *created
		updated.Name = "Renamed"
		updated.Color = "#000000"

		got, err := s.UpdateCategory(&updated)
		testutil.AssertNoError(t, err)

		if got.Name != "Renamed" || got.Color != "#000000" {
			t.Errorf("expected updated fields, got name=%q color=%q", got.Name, got.Color)
		}
		if !got.CreatedAt.Equal(created.CreatedAt) {
			t.Error("expected creation time to be preserved")
		}
	})

	t.Run("keeping_own_name_is_not_a_duplicate", func(t *testing.T) {
		s, db := newTestStore(t)
		created := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)

		updated := *created
		updated.Color = "#123456"

		_, err := s.UpdateCategory(&updated)
		testutil.AssertNoError(t, err)
	})

	t.Run("rejects_name_taken_by_another", func(t *testing.T) {
		s, db := newTestStore(t)
		first := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)
		second := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)

		updated := *second
		updated.Name = first.Name

		_, err := s.UpdateCategory(&updated)
		testutil.AssertAppError(t, err, "DUPLICATE_CATEGORY")
	})

	t.Run("not_found", func(t *testing.T) {
		s, _ := newTestStore(t)

		c := models.Category{Name: "Ghost", Type: models.CategoryTypeExpense}
		c.ID = "missing"
		_, err := s.UpdateCategory(&c)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})
}

func TestDeleteCategory(t *testing.T) {
	t.Run("removes_unused_category", func(t *testing.T) {
		s, db := newTestStore(t)
		created := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)

		testutil.AssertNoError(t, s.DeleteCategory(created.ID))

		_, err := s.GetCategory(created.ID)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})

	t.Run("refuses_while_referenced", func(t *testing.T) {
		s, db := newTestStore(t)
		category := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)

		tx := testutil.CreateTestTransaction(t, db, models.TransactionTypeExpense, "12",
			time.Date(2024, time.March, 1, 12, 0, 0, 0, time.Local))
		tx.CategoryID = category.ID
		testutil.AssertNoError(t, db.Save(tx).Error)

		testutil.AssertAppError(t, s.DeleteCategory(category.ID), "CATEGORY_IN_USE")

		// Deleting the referencing transaction lifts the refusal.
		testutil.AssertNoError(t, s.DeleteTransaction(tx.ID))
		testutil.AssertNoError(t, s.DeleteCategory(category.ID))
	})

	t.Run("not_found", func(t *testing.T) {
		s, _ := newTestStore(t)
		testutil.AssertAppError(t, s.DeleteCategory("missing"), "CATEGORY_NOT_FOUND")
	})
}

func TestListCategories(t *testing.T) {
	t.Run("filters_by_type", func(t *testing.T) {
		s, db := newTestStore(t)
		testutil.CreateTestCategory(t, db, models.CategoryTypeIncome)
		testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)
		testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)

		expense := models.CategoryTypeExpense
		out, err := s.ListCategories(&expense)
		testutil.AssertNoError(t, err)

		if len(out) != 2 {
			t.Fatalf("expected 2 expense categories, got %d", len(out))
		}
		for _, c := range out {
			if c.Type != models.CategoryTypeExpense {
				t.Errorf("expected expense type, got %q", c.Type)
			}
		}
	})

	t.Run("ordered_by_name", func(t *testing.T) {
		s, _ := newTestStore(t)
		for _, name := range []string{"Zoo", "Alpha", "Middle"} {
			_, err := s.AddCategory(&models.Category{Name: name, Type: models.CategoryTypeExpense})
			testutil.AssertNoError(t, err)
		}

		out, err := s.ListCategories(nil)
		testutil.AssertNoError(t, err)

		if len(out) != 3 {
			t.Fatalf("expected 3 categories, got %d", len(out))
		}
		if out[0].Name != "Alpha" || out[2].Name != "Zoo" {
			t.Errorf("expected name order, got %q, %q, %q", out[0].Name, out[1].Name, out[2].Name)
		}
	})
}

func TestSeedDefaultCategories(t *testing.T) {
	t.Run("seeds_empty_store", func(t *testing.T) {
		s, _ := newTestStore(t)

		n, err := s.SeedDefaultCategories()
		testutil.AssertNoError(t, err)

		if want := len(DefaultCategories()); n != want {
			t.Errorf("expected %d seeded categories, got %d", want, n)
		}

		out, err := s.ListCategories(nil)
		testutil.AssertNoError(t, err)
		if len(out) != n {
			t.Errorf("expected %d categories in store, got %d", n, len(out))
		}
	})

	t.Run("leaves_non_empty_store_alone", func(t *testing.T) {
		s, db := newTestStore(t)
		testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)

		n, err := s.SeedDefaultCategories()
		testutil.AssertNoError(t, err)
		if n != 0 {
			t.Errorf("expected no seeding into non-empty store, got %d", n)
		}

		out, err := s.ListCategories(nil)
		testutil.AssertNoError(t, err)
		if len(out) != 1 {
			t.Errorf("expected the existing category only, got %d", len(out))
		}
	})
}
