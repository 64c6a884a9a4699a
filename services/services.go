package services

// Services - все сервисы турнира с общими блокировками.
type Services struct {
	Participants ParticipantService
	Ordering     OrderingService
	Clubs        ClubService
	Draw         DrawService
	Standings    StandingsService
	Bracket      BracketService
	Settings     SettingsService
	Snapshot     SnapshotService
	Reveal       RevealService
}

func New(d Deps) *Services {
	if d.Locks == nil {
		d.Locks = NewTournamentLocks()
	}
	return &Services{
		Participants: NewParticipantService(d),
		Ordering:     NewOrderingService(d),
		Clubs:        NewClubService(d),
		Draw:         NewDrawService(d),
		Standings:    NewStandingsService(d),
		Bracket:      NewBracketService(d),
		Settings:     NewSettingsService(d),
		Snapshot:     NewSnapshotService(d),
		Reveal:       NewRevealService(d),
	}
}
