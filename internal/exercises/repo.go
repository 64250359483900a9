package exercises

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/gymcoach/internal/telemetry/tracing"
	"github.com/2beens/gymcoach/pkg/recommend"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrExerciseNotFound = errors.New("exercise not found")

const exerciseColumns = `id, name, equipment, target_area, main_muscles, secondary_muscles, difficulty, popularity_score`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Repo is the postgres backed exercise catalog.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) FindByMuscleGroup(ctx context.Context, muscle string, excludeIDs []string) (_ []recommend.Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.find_by_muscle_group")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("params.muscle", muscle),
		attribute.Int("params.excluded", len(excludeIDs)),
	)

	// a NULL array would make the NOT ANY predicate NULL for every row
	if excludeIDs == nil {
		excludeIDs = []string{}
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT `+exerciseColumns+`
			FROM exercise_catalog
			WHERE $1 = ANY(main_muscles)
				AND NOT (id = ANY($2))
				AND name <> ''
			ORDER BY popularity_score DESC, name ASC
		`,
		muscle,
		excludeIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("find by muscle group [query]: %w", err)
	}

	return scanExercises(rows)
}

func (r *Repo) Search(ctx context.Context, query string, filters recommend.SearchFilters) (_ []recommend.Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.search")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("params.query", query))
	if filters.TargetArea != "" {
		span.SetAttributes(attribute.String("params.targetArea", filters.TargetArea))
	}
	if filters.Equipment != "" {
		span.SetAttributes(attribute.String("params.equipment", filters.Equipment))
	}
	if filters.Difficulty != "" {
		span.SetAttributes(attribute.String("params.difficulty", filters.Difficulty))
	}

	query = strings.TrimSpace(query)
	rows, err := r.db.Query(
		ctx,
		`
			SELECT `+exerciseColumns+`
			FROM exercise_catalog
			WHERE ($1::text = ''
					OR name ILIKE $2 ESCAPE '\'
					OR target_area ILIKE $2 ESCAPE '\'
					OR equipment ILIKE $2 ESCAPE '\')
				AND ($3::text = '' OR target_area = $3)
				AND ($4::text = '' OR equipment = $4)
				AND ($5::text = '' OR difficulty = $5)
				AND name <> ''
			ORDER BY name ASC
		`,
		query,
		ContainsPattern(query),
		filters.TargetArea,
		filters.Equipment,
		filters.Difficulty,
	)
	if err != nil {
		return nil, fmt.Errorf("search [query]: %w", err)
	}

	return scanExercises(rows)
}

// ContainsPattern turns a free text query into an ILIKE substring pattern, escaping LIKE wildcards.
func ContainsPattern(query string) string {
	return "%" + likeEscaper.Replace(query) + "%"
}

func (r *Repo) ListFacetValues(ctx context.Context) (_ recommend.FacetValues, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list_facet_values")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var facets recommend.FacetValues
	if facets.TargetAreas, err = r.distinctValues(ctx, "target_area"); err != nil {
		return recommend.FacetValues{}, err
	}
	if facets.Equipment, err = r.distinctValues(ctx, "equipment"); err != nil {
		return recommend.FacetValues{}, err
	}
	if facets.Difficulties, err = r.distinctValues(ctx, "difficulty"); err != nil {
		return recommend.FacetValues{}, err
	}

	return facets, nil
}

// column is always one of the fixed facet column names, never user input.
func (r *Repo) distinctValues(ctx context.Context, column string) ([]string, error) {
	rows, err := r.db.Query(
		ctx,
		fmt.Sprintf(`
			SELECT DISTINCT %[1]s
			FROM exercise_catalog
			WHERE %[1]s <> ''
			ORDER BY %[1]s ASC
		`, column),
	)
	if err != nil {
		return nil, fmt.Errorf("distinct %s [query]: %w", column, err)
	}

	values, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("distinct %s [collect rows]: %w", column, err)
	}
	if values == nil {
		values = []string{}
	}

	return values, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ recommend.Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", id))

	var ex recommend.Exercise
	err = r.db.QueryRow(
		ctx,
		`SELECT `+exerciseColumns+` FROM exercise_catalog WHERE id = $1`,
		id,
	).Scan(exerciseScanDest(&ex)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return recommend.Exercise{}, ErrExerciseNotFound
		}
		return recommend.Exercise{}, fmt.Errorf("get exercise [query row]: %w", err)
	}

	return ex, nil
}

func (r *Repo) Add(ctx context.Context, ex recommend.Exercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(
		ctx,
		`
			INSERT INTO exercise_catalog
				(`+exerciseColumns+`, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
		`,
		exerciseArgs(ex)...,
	)
	if err != nil {
		return fmt.Errorf("add exercise: %w", err)
	}

	return nil
}

// Upsert inserts the exercise or overwrites the one with the same id.
func (r *Repo) Upsert(ctx context.Context, ex recommend.Exercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(
		ctx,
		`
			INSERT INTO exercise_catalog
				(`+exerciseColumns+`, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				equipment = EXCLUDED.equipment,
				target_area = EXCLUDED.target_area,
				main_muscles = EXCLUDED.main_muscles,
				secondary_muscles = EXCLUDED.secondary_muscles,
				difficulty = EXCLUDED.difficulty,
				popularity_score = EXCLUDED.popularity_score
		`,
		exerciseArgs(ex)...,
	)
	if err != nil {
		return fmt.Errorf("upsert exercise: %w", err)
	}

	return nil
}

func (r *Repo) Update(ctx context.Context, ex recommend.Exercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`
			UPDATE exercise_catalog
			SET name = $2, equipment = $3, target_area = $4, main_muscles = $5,
				secondary_muscles = $6, difficulty = $7, popularity_score = $8
			WHERE id = $1
		`,
		exerciseArgs(ex)...,
	)
	if err != nil {
		return fmt.Errorf("update exercise: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}

	return nil
}

func (r *Repo) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM exercise_catalog WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}

	return nil
}

func (r *Repo) Count(ctx context.Context) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM exercise_catalog`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count exercises: %w", err)
	}

	return count, nil
}

func scanExercises(rows pgx.Rows) ([]recommend.Exercise, error) {
	defer rows.Close()

	exercises := []recommend.Exercise{}
	for rows.Next() {
		var ex recommend.Exercise
		if err := rows.Scan(exerciseScanDest(&ex)...); err != nil {
			return nil, fmt.Errorf("exercises [rows scan]: %w", err)
		}
		exercises = append(exercises, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("exercises [rows error]: %w", err)
	}

	return exercises, nil
}

func exerciseScanDest(ex *recommend.Exercise) []any {
	return []any{
		&ex.ID,
		&ex.Name,
		&ex.Equipment,
		&ex.TargetArea,
		&ex.MainMuscles,
		&ex.SecondaryMuscles,
		&ex.Difficulty,
		&ex.PopularityScore,
	}
}

func exerciseArgs(ex recommend.Exercise) []any {
	mainMuscles := ex.MainMuscles
	if mainMuscles == nil {
		mainMuscles = []string{}
	}
	secondaryMuscles := ex.SecondaryMuscles
	if secondaryMuscles == nil {
		secondaryMuscles = []string{}
	}
	return []any{
		ex.ID,
		ex.Name,
		ex.Equipment,
		ex.TargetArea,
		mainMuscles,
		secondaryMuscles,
		ex.Difficulty,
		ex.PopularityScore,
	}
}
