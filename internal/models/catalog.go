package models

// DriverName splits a driver's display name.
type DriverName struct {
	First string `bson:"first,omitempty" json:"first,omitempty"`
	Last  string `bson:"last,omitempty" json:"last,omitempty"`
}

// DriverBirth holds a driver's birth date and place.
type DriverBirth struct {
	Date  string `bson:"date,omitempty" json:"date,omitempty"`
	Place string `bson:"place,omitempty" json:"place,omitempty"`
}

// DriverCareer summarizes a driver's career milestones.
type DriverCareer struct {
	Teams        []string `bson:"teams,omitempty" json:"teams,omitempty"`
	FirstRace    string   `bson:"first_race,omitempty" json:"first_race,omitempty"`
	FirstVictory string   `bson:"first_victory,omitempty" json:"first_victory,omitempty"`
	LastVictory  string   `bson:"last_victory,omitempty" json:"last_victory,omitempty"`
}

// DriverImages references a driver's gallery assets.
type DriverImages struct {
	Image1 string `bson:"image_1,omitempty" json:"image_1,omitempty"`
	Image2 string `bson:"image_2,omitempty" json:"image_2,omitempty"`
	Image3 string `bson:"image_3,omitempty" json:"image_3,omitempty"`
}

// Nationality pairs a country name with its flag asset.
type Nationality struct {
	Country   string `bson:"country,omitempty" json:"country,omitempty"`
	FlagImage string `bson:"flag_image,omitempty" json:"flag_image,omitempty"`
}

// DriverStats holds a driver's aggregate statistics.
type DriverStats struct {
	Podiums             int     `bson:"podiums,omitempty" json:"podiums,omitempty"`
	GPEntered           int     `bson:"gp_entered,omitempty" json:"gp_entered,omitempty"`
	WorldChampionships  int     `bson:"world_championships,omitempty" json:"world_championships,omitempty"`
	HighestRaceFinish   int     `bson:"highest_race_finish,omitempty" json:"highest_race_finish,omitempty"`
	HighestGridPosition int     `bson:"highest_grid_position,omitempty" json:"highest_grid_position,omitempty"`
	TotalPoints         float64 `bson:"total_points,omitempty" json:"total_points,omitempty"`
	SeasonPoints        float64 `bson:"season_points,omitempty" json:"season_points,omitempty"`
}

// Driver is the driver document body, upserted under driver_<id>. The
// id itself lives in the filter, not in the $set payload.
type Driver struct {
	Biography    string       `bson:"biography,omitempty" json:"biography,omitempty"`
	Birth        DriverBirth  `bson:"birth,omitempty" json:"birth,omitempty"`
	CarNumber    int          `bson:"car_number,omitempty" json:"car_number,omitempty"`
	Career       DriverCareer `bson:"career,omitempty" json:"career,omitempty"`
	Images       DriverImages `bson:"images,omitempty" json:"images,omitempty"`
	Name         DriverName   `bson:"name,omitempty" json:"name,omitempty"`
	Nationality  Nationality  `bson:"nationality,omitempty" json:"nationality,omitempty"`
	ProfileImage string       `bson:"profile_image,omitempty" json:"profile_image,omitempty"`
	Stats        DriverStats  `bson:"stats,omitempty" json:"stats,omitempty"`
	Team         string       `bson:"team,omitempty" json:"team,omitempty"`
}

// TeamChiefs names a team's leadership.
type TeamChiefs struct {
	TeamPrincipal string   `bson:"team_principal,omitempty" json:"team_principal,omitempty"`
	Technical     []string `bson:"technical,omitempty" json:"technical,omitempty"`
}

// TeamStats holds a team's aggregate statistics.
type TeamStats struct {
	FirstEntry         string `bson:"first_entry,omitempty" json:"first_entry,omitempty"`
	WorldChampionships int    `bson:"world_championships,omitempty" json:"world_championships,omitempty"`
	HighestRaceFinish  int    `bson:"highest_race_finish,omitempty" json:"highest_race_finish,omitempty"`
	PolePositions      int    `bson:"pole_positions,omitempty" json:"pole_positions,omitempty"`
	FastestLaps        int    `bson:"fastest_laps,omitempty" json:"fastest_laps,omitempty"`
}

// TeamImages references a team's gallery assets.
type TeamImages struct {
	Car     string   `bson:"car,omitempty" json:"car,omitempty"`
	General []string `bson:"general,omitempty" json:"general,omitempty"`
}

// Team is the team document body, upserted under team_<id>.
type Team struct {
	Base       string     `bson:"base,omitempty" json:"base,omitempty"`
	Chassis    string     `bson:"chassis,omitempty" json:"chassis,omitempty"`
	Chiefs     TeamChiefs `bson:"chiefs,omitempty" json:"chiefs,omitempty"`
	Drivers    []string   `bson:"drivers,omitempty" json:"drivers,omitempty"`
	FullName   string     `bson:"fullname,omitempty" json:"fullname,omitempty"`
	Logo       string     `bson:"logo,omitempty" json:"logo,omitempty"`
	Name       string     `bson:"name,omitempty" json:"name,omitempty"`
	Points     *float64   `bson:"points,omitempty" json:"points,omitempty"`
	PowerUnit  string     `bson:"power_unit,omitempty" json:"power_unit,omitempty"`
	Stats      TeamStats  `bson:"stats,omitempty" json:"stats,omitempty"`
	TeamColor  string     `bson:"team_color,omitempty" json:"team_color,omitempty"`
	TeamImages TeamImages `bson:"team_images,omitempty" json:"team_images,omitempty"`
}

// DriverID and TeamID build catalog document ids.
func DriverID(id string) string { return "driver_" + id }
func TeamID(id string) string   { return "team_" + id }
