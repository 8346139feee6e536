package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/expoconf/conference-portal/config"
	"github.com/expoconf/conference-portal/pkg/helpers"
)

type seedUser struct {
	email string
	name  string
	role  string
}

type seedRoom struct {
	name     string
	capacity int
}

type seedSponsor struct {
	name        string
	description string
	logo        string
	website     string
	email       string
	phone       string
	level       string
	userEmail   string // optional account owning this sponsor
}

type seedConference struct {
	title       string
	description string
	speaker     string
	date        string
	duration    int
	room        string
	maxCapacity int
	sponsor     string
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	users := []seedUser{
		{"admin@demo.com", "Administrateur", "ADMIN"},
		{"visiteur@demo.com", "Visiteur Demo", "VISITOR"},
		{"user2@example.com", "Marie Martin", "VISITOR"},
		{"sponsor@demo.com", "Sponsor Demo", "VISITOR"},
	}
	userIDs := map[string]string{}
	for _, u := range users {
		var id string
		err := db.QueryRow(`
			INSERT INTO users (email, password_hash, name, role)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name
			RETURNING id
		`, u.email, hash, u.name, u.role).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed user %s: %v", u.email, err)
		}
		userIDs[u.email] = id
	}
	fmt.Printf("seeded %d users (password=%s)\n", len(users), password)

	rooms := []seedRoom{
		{"Salle A", 100},
		{"Salle B", 80},
		{"Salle C", 60},
		{"Salle D", 50},
		{"Salle E", 40},
	}
	roomIDs := map[string]string{}
	for _, r := range rooms {
		var id string
		err := db.QueryRow(`
			INSERT INTO rooms (name, capacity)
			VALUES ($1, $2)
			ON CONFLICT (name) DO UPDATE SET capacity = EXCLUDED.capacity
			RETURNING id
		`, r.name, r.capacity).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed room %s: %v", r.name, err)
		}
		roomIDs[r.name] = id
	}
	fmt.Printf("seeded %d rooms\n", len(rooms))

	sponsors := []seedSponsor{
		{
			name:        "TechCorp",
			description: "Leader dans le développement de solutions technologiques innovantes",
			logo:        "https://via.placeholder.com/150x150/3B82F6/FFFFFF?text=TechCorp",
			website:     "https://techcorp.com",
			email:       "contact@techcorp.com",
			phone:       "+33 1 23 45 67 89",
			level:       "PLATINUM",
			userEmail:   "sponsor@demo.com",
		},
		{
			name:        "InnovSoft",
			description: "Spécialiste en logiciels d'entreprise et solutions cloud",
			logo:        "https://via.placeholder.com/150x150/10B981/FFFFFF?text=InnovSoft",
			website:     "https://innovsoft.com",
			email:       "info@innovsoft.com",
			phone:       "+33 1 98 76 54 32",
			level:       "GOLD",
		},
		{
			name:        "DataFlow",
			description: "Expert en analyse de données et intelligence artificielle",
			logo:        "https://via.placeholder.com/150x150/F59E0B/FFFFFF?text=DataFlow",
			website:     "https://dataflow.com",
			email:       "hello@dataflow.com",
			phone:       "+33 1 45 67 89 12",
			level:       "SILVER",
		},
		{
			name:        "CloudNet",
			description: "Services cloud et infrastructure IT",
			logo:        "https://via.placeholder.com/150x150/8B5CF6/FFFFFF?text=CloudNet",
			website:     "https://cloudnet.com",
			email:       "contact@cloudnet.com",
			phone:       "+33 1 34 56 78 90",
			level:       "BRONZE",
		},
	}
	sponsorIDs := map[string]string{}
	for _, s := range sponsors {
		var owner any
		if s.userEmail != "" {
			owner = userIDs[s.userEmail]
		}
		var id string
		err := db.QueryRow(`
			INSERT INTO sponsors (name, description, logo, website, email, phone, level, user_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id
		`, s.name, s.description, s.logo, s.website, s.email, s.phone, s.level, owner).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed sponsor %s: %v", s.name, err)
		}
		sponsorIDs[s.name] = id
	}
	fmt.Printf("seeded %d sponsors\n", len(sponsors))

	conferences := []seedConference{
		{"Introduction à Next.js 14", "Découvrez les nouvelles fonctionnalités de Next.js 14 et comment les utiliser dans vos projets.", "Sarah Johnson", "2024-03-15T09:00:00Z", 90, "Salle A", 80, "TechCorp"},
		{"Architecture Cloud Native", "Les meilleures pratiques pour concevoir des applications cloud-native scalables.", "Marc Dubois", "2024-03-15T11:00:00Z", 120, "Salle B", 60, "CloudNet"},
		{"Machine Learning en Production", "Comment déployer et maintenir des modèles ML en production de manière fiable.", "Dr. Elena Rodriguez", "2024-03-15T14:00:00Z", 90, "Salle C", 50, "DataFlow"},
		{"Sécurité des Applications Web", "Les vulnérabilités courantes et comment les prévenir dans vos applications web.", "Alex Chen", "2024-03-16T09:00:00Z", 90, "Salle A", 80, "InnovSoft"},
		{"Microservices avec Docker", "Conception et déploiement d'architectures microservices avec Docker et Kubernetes.", "Pierre Moreau", "2024-03-16T11:00:00Z", 120, "Salle B", 60, ""},
		{"React Performance Optimization", "Techniques avancées pour optimiser les performances de vos applications React.", "Emma Wilson", "2024-03-16T14:00:00Z", 90, "Salle C", 50, "TechCorp"},
		{"API Design Patterns", "Les patterns de conception pour créer des APIs RESTful robustes et maintenables.", "David Kim", "2024-03-17T09:00:00Z", 90, "Salle A", 80, "InnovSoft"},
		{"Data Engineering avec Python", "Construction de pipelines de données avec Python, Pandas et Apache Airflow.", "Sophie Martin", "2024-03-17T11:00:00Z", 120, "Salle B", 60, "DataFlow"},
		{"DevOps Best Practices", "Intégration continue, déploiement continu et automatisation des processus.", "Thomas Anderson", "2024-03-17T14:00:00Z", 90, "Salle C", 50, "CloudNet"},
	}
	conferenceIDs := make([]string, 0, len(conferences))
	for _, c := range conferences {
		when, err := time.Parse(time.RFC3339, c.date)
		if err != nil {
			log.Fatalf("bad date for %s: %v", c.title, err)
		}
		var sponsor any
		if c.sponsor != "" {
			sponsor = sponsorIDs[c.sponsor]
		}
		var id string
		err = db.QueryRow(`
			INSERT INTO conferences (title, description, speaker, date, duration, room_id, max_capacity, sponsor_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id
		`, c.title, c.description, c.speaker, when, c.duration, roomIDs[c.room], c.maxCapacity, sponsor).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed conference %s: %v", c.title, err)
		}
		conferenceIDs = append(conferenceIDs, id)
	}
	fmt.Printf("seeded %d conferences\n", len(conferences))

	registrations := []struct {
		userEmail string
		confIdx   int
	}{
		{"visiteur@demo.com", 0},
		{"visiteur@demo.com", 2},
		{"user2@example.com", 1},
		{"user2@example.com", 3},
	}
	for _, reg := range registrations {
		if _, err := db.Exec(`
			INSERT INTO user_conferences (user_id, conference_id)
			VALUES ($1, $2)
			ON CONFLICT (user_id, conference_id) DO NOTHING
		`, userIDs[reg.userEmail], conferenceIDs[reg.confIdx]); err != nil {
			log.Fatalf("failed to seed registration: %v", err)
		}
	}
	fmt.Printf("seeded %d registrations\n", len(registrations))
}
