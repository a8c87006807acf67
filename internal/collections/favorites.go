package collections

// Favorites returns the persisted favorite set. A store that has never
// been written yields an empty set, not an error.
func (s *Service) Favorites() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadFavorites()
}

// ToggleFavorite adds isbn to the favorite set if absent, removes it if
// present, and returns the new set. The set is re-read from storage
// before the write, so two rapid toggles on the same isbn net to the
// parity-correct final state.
func (s *Service) ToggleFavorite(isbn string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	favorites, err := s.loadFavorites()
	if err != nil {
		return nil, err
	}

	updated := make([]string, 0, len(favorites)+1)
	found := false
	for _, fav := range favorites {
		if fav == isbn {
			found = true
			continue
		}
		updated = append(updated, fav)
	}
	if !found {
		updated = append(updated, isbn)
	}

	if err := s.store.Set(favoritesKey, updated); err != nil {
		return nil, err
	}

	s.logger.Debug("toggled favorite", "isbn", isbn, "favorited", !found, "count", len(updated))
	return updated, nil
}

// RemoveFavorite removes isbn from the favorite set. Removing an absent
// isbn is a no-op, not an error.
func (s *Service) RemoveFavorite(isbn string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	favorites, err := s.loadFavorites()
	if err != nil {
		return nil, err
	}

	updated := make([]string, 0, len(favorites))
	for _, fav := range favorites {
		if fav != isbn {
			updated = append(updated, fav)
		}
	}
	if len(updated) == len(favorites) {
		return favorites, nil
	}

	if err := s.store.Set(favoritesKey, updated); err != nil {
		return nil, err
	}

	s.logger.Debug("removed favorite", "isbn", isbn, "count", len(updated))
	return updated, nil
}

// ClearFavorites removes every favorite. Idempotent.
func (s *Service) ClearFavorites() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(favoritesKey); err != nil {
		return err
	}
	s.logger.Info("cleared all favorites")
	return nil
}

// IsFavorite reports whether isbn is currently favorited.
func (s *Service) IsFavorite(isbn string) (bool, error) {
	favorites, err := s.Favorites()
	if err != nil {
		return false, err
	}
	for _, fav := range favorites {
		if fav == isbn {
			return true, nil
		}
	}
	return false, nil
}
