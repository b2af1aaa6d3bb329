package service

import (
	"context"
	"errors"
	"testing"

	"gamecatalog/backend/internal/apperror"
	"gamecatalog/backend/internal/testutil"
)

func intPtr(v int) *int { return &v }
func strPtr(v string) *string { return &v }

func TestGenreCreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewGenreService(db)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateGenreInput{Name: "Action"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.ID == 0 {
		t.Fatal("Expected an assigned id")
	}

	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Name != "Action" {
		t.Errorf("Expected name Action, got %s", got.Name)
	}
}

func TestGenreGetNotFound(t *testing.T) {
	svc := NewGenreService(testutil.NewTestDB(t))

	_, err := svc.Get(context.Background(), 42)

	var nf *apperror.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Expected NotFoundError, got %v", err)
	}
	if nf.ID != 42 || nf.Resource != "Genre" {
		t.Errorf("Unexpected error fields %+v", nf)
	}
	if err.Error() != "Genre #42 not found" {
		t.Errorf("Unexpected message %q", err.Error())
	}
}

func TestGenreCreateDuplicateNameConflicts(t *testing.T) {
	svc := NewGenreService(testutil.NewTestDB(t))
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateGenreInput{Name: "Action"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	_, err := svc.Create(ctx, CreateGenreInput{Name: "Action"})

	var conflict *apperror.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("Expected ConflictError, got %v", err)
	}
}

func TestGenreList(t *testing.T) {
	svc := NewGenreService(testutil.NewTestDB(t))
	ctx := context.Background()
	for _, name := range []string{"Action", "Adventure", "Puzzle"} {
		if _, err := svc.Create(ctx, CreateGenreInput{Name: name}); err != nil {
			t.Fatalf("Create(%s) error = %v", name, err)
		}
	}

	tests := []struct {
		name  string
		page  Pagination
		names []string
	}{
		{"all rows when unset", Pagination{}, []string{"Action", "Adventure", "Puzzle"}},
		{"first page", Pagination{Limit: intPtr(1), Offset: intPtr(0)}, []string{"Action"}},
		{"second page", Pagination{Limit: intPtr(1), Offset: intPtr(1)}, []string{"Adventure"}},
		{"offset only", Pagination{Offset: intPtr(2)}, []string{"Puzzle"}},
		{"past the end", Pagination{Limit: intPtr(5), Offset: intPtr(10)}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			genres, err := svc.List(ctx, tt.page)
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if len(genres) != len(tt.names) {
				t.Fatalf("Expected %d genres, got %d", len(tt.names), len(genres))
			}
			for i, g := range genres {
				if g.Name != tt.names[i] {
					t.Errorf("Expected genre %d to be %s, got %s", i, tt.names[i], g.Name)
				}
			}
		})
	}
}

func TestGenreUpdate(t *testing.T) {
	svc := NewGenreService(testutil.NewTestDB(t))
	ctx := context.Background()
	genre, _ := svc.Create(ctx, CreateGenreInput{Name: "Action"})

	updated, err := svc.Update(ctx, genre.ID, UpdateGenreInput{Name: strPtr("Adventure")})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.ID != genre.ID || updated.Name != "Adventure" {
		t.Errorf("Unexpected genre %+v", updated)
	}

	unchanged, err := svc.Update(ctx, genre.ID, UpdateGenreInput{})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if unchanged.Name != "Adventure" {
		t.Errorf("Expected name to be kept, got %s", unchanged.Name)
	}
}

func TestGenreUpdateNotFound(t *testing.T) {
	svc := NewGenreService(testutil.NewTestDB(t))

	_, err := svc.Update(context.Background(), 7, UpdateGenreInput{Name: strPtr("x")})

	var nf *apperror.NotFoundError
	if !errors.As(err, &nf) || nf.ID != 7 {
		t.Fatalf("Expected NotFoundError for 7, got %v", err)
	}
}

func TestGenreRemoveKeepsGames(t *testing.T) {
	db := testutil.NewTestDB(t)
	genres := NewGenreService(db)
	games := NewGameService(db)
	ctx := context.Background()

	game, err := games.Create(ctx, CreateGameInput{Name: "G", Description: "D", Image: "i.jpg", Genres: []string{"Action"}})
	if err != nil {
		t.Fatalf("Create game error = %v", err)
	}

	removed, err := genres.Remove(ctx, game.Genres[0].ID)
	if err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if removed.Name != "Action" {
		t.Errorf("Expected removed snapshot, got %+v", removed)
	}

	if _, err := genres.Get(ctx, removed.ID); err == nil {
		t.Error("Expected genre to be gone")
	}
	reloaded, err := games.Get(ctx, game.ID)
	if err != nil {
		t.Fatalf("Expected game to survive genre removal: %v", err)
	}
	if len(reloaded.Genres) != 0 {
		t.Errorf("Expected no genres, got %d", len(reloaded.Genres))
	}

	var joinRows int64
	db.Table("game_genres").Count(&joinRows)
	if joinRows != 0 {
		t.Errorf("Expected association rows to be deleted, got %d", joinRows)
	}
}

func TestGenreRemoveNotFound(t *testing.T) {
	svc := NewGenreService(testutil.NewTestDB(t))

	_, err := svc.Remove(context.Background(), 3)

	var nf *apperror.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Expected NotFoundError, got %v", err)
	}
}

func TestGenreListEmpty(t *testing.T) {
	svc := NewGenreService(testutil.NewTestDB(t))

	genres, err := svc.List(context.Background(), Pagination{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(genres) != 0 {
		t.Errorf("Expected no genres, got %v", genres)
	}
}
