package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "code", "name").
		From("teams").
		Where(Eq("sport_id", int64(2)), IsNull("deleted_at")).
		OrderBy("code").
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, code, name FROM teams WHERE sport_id = $1 AND deleted_at IS NULL ORDER BY code"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != int64(2) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilderWithSuffix(t *testing.T) {
	query, args, err := InsertInto("events").
		Columns("source", "external_id", "venue").
		Values("basketee", "abc", "Sõle Spordikeskus").
		Suffix("ON CONFLICT (source, external_id) DO UPDATE SET venue = EXCLUDED.venue RETURNING (xmax = 0)").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO events (source, external_id, venue) VALUES ($1, $2, $3) " +
		"ON CONFLICT (source, external_id) DO UPDATE SET venue = EXCLUDED.venue RETURNING (xmax = 0)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		Source   string `db:"source"`
		External string `db:"external_id"`
		Ignored  string `db:"-"`
	}

	query, args, err := InsertModel("raw_hockey_events", row{Source: "ehs", External: "91822"}, "")
	if err != nil {
		t.Fatalf("build insert model query: %v", err)
	}

	wantQuery := "INSERT INTO raw_hockey_events (source, external_id) VALUES ($1, $2)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "ehs" || args[1] != "91822" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertModelPromotesEmbeddedFields(t *testing.T) {
	type identityColumns struct {
		Source   string `db:"source"`
		External string `db:"external_id"`
	}
	type row struct {
		identityColumns
		Venue string `db:"raw_venue"`
	}

	query, args, err := InsertModel("events", row{
		identityColumns: identityColumns{Source: "estlatbl.com", External: "abc"},
		Venue:           "Tallinn, TalTech Spordihoone",
	}, "")
	if err != nil {
		t.Fatalf("build insert model query: %v", err)
	}

	wantQuery := "INSERT INTO events (source, external_id, raw_venue) VALUES ($1, $2, $3)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[2] != "Tallinn, TalTech Spordihoone" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilderRowWidthMismatch(t *testing.T) {
	_, _, err := InsertInto("events").Columns("a", "b").Values("only-one").ToSQL()
	if err == nil {
		t.Fatal("expected row width error")
	}
}
