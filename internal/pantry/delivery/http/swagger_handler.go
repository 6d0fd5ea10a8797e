package http

// ListPantry godoc
// @Summary List a user's pantry
// @Description Paginated, newest first. Amounts serialize as decimal strings.
// @Tags Pantry
// @Produce json
// @Param userId query string true "User UUID"
// @Param limit query int false "Page size [1,100]" default(20)
// @Param offset query int false "Rows to skip" default(0)
// @Success 200 {object} object{total=int,limit=int,offset=int,items=array}
// @Failure 400 {object} object{error=object}
// @Failure 500 {object} object{error=string}
// @Router /api/pantry [get]
func (h *PantryHandler) ListPantryDoc() {}

// AddPantryItem godoc
// @Summary Add an ingredient to the pantry
// @Description Merges into the existing row when the user, case-insensitive ingredient name, and unit match: the amounts add and the expiry is only overwritten when supplied. The user id comes from the body or the x-user-id header.
// @Tags Pantry
// @Accept json
// @Produce json
// @Param body body addPantryReq true "Pantry item"
// @Success 201 {object} pantryItem
// @Failure 400 {object} object{error=object}
// @Failure 500 {object} object{error=string}
// @Router /api/pantry [post]
func (h *PantryHandler) AddPantryItemDoc() {}

// SearchPantry godoc
// @Summary Search a user's pantry
// @Description Case-insensitive ingredient-name contains, ordered by name then id. The user id comes from the query or the x-user-id header.
// @Tags Pantry
// @Produce json
// @Param userId query string false "User UUID (falls back to x-user-id header)"
// @Param q query string true "Search text"
// @Param limit query int false "Page size [1,100]" default(20)
// @Param offset query int false "Rows to skip" default(0)
// @Success 200 {object} object{q=string,total=int,limit=int,offset=int,items=array}
// @Failure 400 {object} object{error=object}
// @Failure 500 {object} object{error=string}
// @Router /api/pantry/search [get]
func (h *PantryHandler) SearchPantryDoc() {}
