package http

// AddFavorite godoc
// @Summary Favorite a cocktail
// @Description Creates the (user, cocktail) pair. The user id comes from the body or the x-user-id header.
// @Tags Favorites
// @Accept json
// @Produce json
// @Param body body favoriteReq true "Favorite"
// @Success 201 {object} domain.Favorite
// @Failure 400 {object} object{error=object}
// @Failure 404 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /api/favorites [post]
func (h *FavoriteHandler) AddFavoriteDoc() {}

// RemoveFavorite godoc
// @Summary Unfavorite a cocktail
// @Tags Favorites
// @Accept json
// @Param body body favoriteReq true "Favorite"
// @Success 204
// @Failure 400 {object} object{error=object}
// @Failure 404 {object} object{error=string}
// @Router /api/favorites [delete]
func (h *FavoriteHandler) RemoveFavoriteDoc() {}

// ToggleFavorite godoc
// @Summary Toggle a favorite
// @Description Removes the pair when it exists, creates it otherwise, and reports which happened.
// @Tags Favorites
// @Accept json
// @Produce json
// @Param body body favoriteReq true "Favorite"
// @Success 200 {object} object{status=string}
// @Failure 400 {object} object{error=object}
// @Failure 404 {object} object{error=string}
// @Router /api/favorites/toggle [post]
func (h *FavoriteHandler) ToggleFavoriteDoc() {}

// ListFavorites godoc
// @Summary List a user's favorites
// @Description Paginated, newest first. with=full expands each cocktail's relations.
// @Tags Favorites
// @Produce json
// @Param user_id query string true "User UUID"
// @Param skip query int false "Rows to skip" default(0)
// @Param take query int false "Page size, capped at 100" default(20)
// @Param with query string false "Expansion mode" Enums(basic, full)
// @Success 200 {object} object{items=array,total=int,skip=int,take=int}
// @Failure 400 {object} object{error=object}
// @Failure 500 {object} object{error=string}
// @Router /api/favorites [get]
func (h *FavoriteHandler) ListFavoritesDoc() {}

// CountFavorites godoc
// @Summary Count favorites of a cocktail
// @Tags Favorites
// @Produce json
// @Param cocktailId path int true "Cocktail ID"
// @Success 200 {object} object{cocktail_id=int,count=int}
// @Failure 400 {object} object{error=string}
// @Router /api/favorites/count/{cocktailId} [get]
func (h *FavoriteHandler) CountFavoritesDoc() {}
