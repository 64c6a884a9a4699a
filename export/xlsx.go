package export

import (
	"fmt"
	"io"

	"github.com/Dosada05/cup-organizer/models"
	"github.com/xuri/excelize/v2"
)

const (
	SheetStandings = "Standings"
	SheetMatches   = "Matches"
	SheetKnockout  = "Knockout"
)

var standingsHeader = []interface{}{"#", "Participant", "Club", "P", "W", "D", "L", "GF", "GA", "GD", "Pts"}

// WriteWorkbook выгружает таблицы групп, историю матчей и сетку плей-офф в XLSX.
func WriteWorkbook(w io.Writer, snap *models.Snapshot) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetStandings); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	if err := writeStandings(f, bold, snap.GroupStandings); err != nil {
		return err
	}
	if _, err := f.NewSheet(SheetMatches); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", SheetMatches, err)
	}
	if err := writeMatches(f, bold, snap.MatchHistory); err != nil {
		return err
	}
	if snap.KnockoutMatches != nil {
		if _, err := f.NewSheet(SheetKnockout); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", SheetKnockout, err)
		}
		if err := writeKnockout(f, bold, snap.KnockoutMatches); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, row, err)
	}
	return nil
}

func boldRow(f *excelize.File, sheet string, row, cols, style int) error {
	from, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	to, err := excelize.CoordinatesToCellName(cols, row)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, from, to, style)
}

// writeStandings пишет таблицы групп друг под другом, с пустой строкой между группами.
func writeStandings(f *excelize.File, bold int, standings []models.GroupStanding) error {
	row := 1
	for _, gs := range standings {
		if err := setRow(f, SheetStandings, row, []interface{}{gs.GroupName}); err != nil {
			return err
		}
		if err := boldRow(f, SheetStandings, row, 1, bold); err != nil {
			return err
		}
		row++
		if err := setRow(f, SheetStandings, row, standingsHeader); err != nil {
			return err
		}
		if err := boldRow(f, SheetStandings, row, len(standingsHeader), bold); err != nil {
			return err
		}
		row++
		for i, t := range gs.Teams {
			values := []interface{}{i + 1, t.ParticipantName, t.Club, t.Played, t.Won, t.Drawn, t.Lost,
				t.GoalsFor, t.GoalsAgainst, t.GoalDifference, t.Points}
			if err := setRow(f, SheetStandings, row, values); err != nil {
				return err
			}
			row++
		}
		row++
	}
	return f.SetColWidth(SheetStandings, "B", "C", 24)
}

func writeMatches(f *excelize.File, bold int, history []models.MatchRecord) error {
	header := []interface{}{"Time", "Group", "Home", "Away", "Score", "Result"}
	if err := setRow(f, SheetMatches, 1, header); err != nil {
		return err
	}
	if err := boldRow(f, SheetMatches, 1, len(header), bold); err != nil {
		return err
	}
	for i, m := range history {
		values := []interface{}{
			m.Timestamp.UTC().Format("2006-01-02 15:04"),
			m.GroupName,
			m.HomeTeam.Name,
			m.AwayTeam.Name,
			fmt.Sprintf("%d:%d", m.HomeGoals, m.AwayGoals),
			string(m.Result),
		}
		if err := setRow(f, SheetMatches, i+2, values); err != nil {
			return err
		}
	}
	return nil
}

func writeKnockout(f *excelize.File, bold int, b *models.Bracket) error {
	header := []interface{}{"Match", "Stage", "Home", "Away", "Score", "Extra time", "Penalties", "Winner"}
	if err := setRow(f, SheetKnockout, 1, header); err != nil {
		return err
	}
	if err := boldRow(f, SheetKnockout, 1, len(header), bold); err != nil {
		return err
	}
	row := 2
	for _, m := range b.Matches() {
		values := []interface{}{
			m.ID,
			string(m.Stage),
			teamName(m.HomeTeam),
			teamName(m.AwayTeam),
			score(m.HomeGoals, m.AwayGoals),
			score(m.HomeExtraTimeGoals, m.AwayExtraTimeGoals),
			score(m.HomePenalties, m.AwayPenalties),
			teamName(m.Winner),
		}
		if err := setRow(f, SheetKnockout, row, values); err != nil {
			return err
		}
		row++
	}

	row++
	titles := []struct {
		label string
		team  *models.QualifiedTeam
	}{
		{"Champion", b.Champion},
		{"Runner-up", b.RunnerUp},
		{"Third place", b.ThirdPlaceWinner},
	}
	for _, t := range titles {
		if err := setRow(f, SheetKnockout, row, []interface{}{t.label, teamName(t.team)}); err != nil {
			return err
		}
		row++
	}
	return nil
}

func teamName(t *models.QualifiedTeam) string {
	if t == nil {
		return ""
	}
	if t.Club == "" {
		return t.ParticipantName
	}
	return fmt.Sprintf("%s (%s)", t.ParticipantName, t.Club)
}

func score(home, away *int) string {
	if home == nil || away == nil {
		return ""
	}
	return fmt.Sprintf("%d:%d", *home, *away)
}
