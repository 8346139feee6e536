package entity

import "errors"

// Sentinel errors shared by repositories and services. The French messages
// are part of the client contract and must not be reworded.
var (
	ErrNotConnected       = errors.New("Non connecté")
	ErrUnauthorized       = errors.New("Accès non autorisé")
	ErrConferenceNotFound = errors.New("Conférence non trouvée")
	ErrSponsorNotFound    = errors.New("Sponsor non trouvé")
	ErrRoomNotFound       = errors.New("Salle non trouvée")
	ErrUserNotFound       = errors.New("Utilisateur non trouvé")
	ErrNoSponsorForUser   = errors.New("Aucun sponsor trouvé pour cet utilisateur")
	ErrAlreadyInProgram   = errors.New("Conférence déjà dans votre programme")
	ErrNotInProgram       = errors.New("Conférence absente de votre programme")
)
