package catalog

import "azpoker/pkg/models"

// Spots is the full course catalog, in display order. Content is edited by
// hand when new classes are published.
var Spots = []models.Spot{
	{
		Key: "juego-recreacionales",
		Classes: []models.Class{
			{
				ID:         "1109112913",
				Title:      "Selección de Mesas y Estrategia Deep",
				VideoURL:   "https://media.azpoker.app/clases/juego-recreacionales/seleccion-de-mesas-deep.mp4",
				Thumbnail:  "https://media.azpoker.app/thumbs/seleccion-de-mesas-deep.jpg",
				UploadDate: "2025-06-18",
				Duration:   "48:12",
				KeyLines: []models.KeyLine{
					{Title: "Elegí la mesa, no la mano", Content: "La mayor parte del winrate contra recreacionales viene de sentarse en la mesa correcta. Buscá stacks profundos y VPIP alto antes de pensar en rangos."},
					{Title: "Deep es posición", Content: "Con 150bb+ el valor de la posición se multiplica. Evitá pots grandes fuera de posición contra el regular de la mesa."},
				},
				Hands: []models.Hand{
					{Hand: "AQs", Description: "Deep en BTN vs limper recreacional: subimos grande preflop y jugamos tres calles de valor en board seco."},
					{Hand: "77", Description: "Set mining con 180bb efectivos: las implied odds justifican el call incluso contra un open grande."},
				},
				Filters: []models.FilterFile{
					{Name: "Pool recreacional NL50", UploadDate: "2025-06-18", Tracker: models.TrackerHoldemManager, DownloadLink: "https://media.azpoker.app/filtros/pool-recreacional-nl50.hm3"},
					{Name: "Mesas deep 150bb+", UploadDate: "2025-06-20", Tracker: models.TrackerH2N, DownloadLink: "https://media.azpoker.app/filtros/mesas-deep-150bb.h2n"},
				},
			},
			{
				ID:         "917120030",
				Title:      "Análisis de Manos vs Jugadores Recreacionales",
				VideoURL:   "https://media.azpoker.app/clases/juego-recreacionales/analisis-vs-recreacionales.mp4",
				UploadDate: "2025-04-02",
				Duration:   "55:40",
				KeyLines: []models.KeyLine{
					{Title: "Valor fino, bluff grueso", Content: "Contra jugadores que pagan de más, ensanchá el rango de apuesta por valor y recortá los faroles sin equity."},
				},
				Hands: []models.Hand{
					{Hand: "KJo", Description: "Top pair en río contra un call-station: tercera calle de valor que contra un regular sería check."},
				},
			},
			{
				ID:       "867351508",
				Title:    "Explotando Errores Comunes de Amateurs",
				VideoURL: "https://media.azpoker.app/clases/juego-recreacionales/errores-comunes-amateurs.mp4",
				Duration: "39:05",
				KeyLines: []models.KeyLine{
					{Title: "El limp cuenta una historia", Content: "Un limp-call en pool recreacional casi nunca esconde una mano premium. Aislá grande y apostá flops secos con rango completo."},
				},
				Hands: []models.Hand{
					{Hand: "A5s", Description: "Aislamos a un limper desde CO; c-bet pequeña en K72r lleva el pot sin resistencia la gran mayoría de las veces."},
				},
			},
		},
	},
	{
		Key: "btn-bb",
		Classes: []models.Class{
			{
				ID:         "885996089",
				Title:      "Defensa de BB vs BTN Open",
				VideoURL:   "https://media.azpoker.app/clases/btn-bb/defensa-bb-vs-btn.mp4",
				Thumbnail:  "https://media.azpoker.app/thumbs/defensa-bb-vs-btn.jpg",
				UploadDate: "2025-07-21",
				Duration:   "1:02:33",
				KeyLines: []models.KeyLine{
					{Title: "Defendé más de lo que creés", Content: "Contra un open de 2.2x el precio de la ciega obliga a defender rangos muy anchos. Foldear manos jugables es el error más caro del spot."},
					{Title: "La c-bet pequeña no te echa", Content: "Frente a una c-bet de un tercio necesitás muy poca equity para continuar. Check-raise con draws que bloquean la continuación del BTN."},
				},
				Hands: []models.Hand{
					{Hand: "96s", Description: "Defensa estándar vs 2.5x; en 875 dos tonos el check-raise presiona a todo el aire del BTN."},
					{Hand: "QTo", Description: "Al límite del rango de defensa: call preflop y juego honesto en flops que conectan con nuestro rango."},
				},
				Filters: []models.FilterFile{
					{Name: "BB defensa vs BTN", UploadDate: "2025-07-21", Tracker: models.TrackerPokerTracker, DownloadLink: "https://media.azpoker.app/filtros/bb-defensa-vs-btn.pt4"},
				},
				Tables: []models.PreflopTable{
					{Name: "BB vs BTN 2.5x — defensa", UploadDate: "2025-07-21", Link: "https://media.azpoker.app/tablas/bb-vs-btn-25x-defensa.pdf"},
					{Name: "BB vs BTN — 3-bet", UploadDate: "2025-07-21", Link: "https://media.azpoker.app/tablas/bb-vs-btn-3bet.pdf"},
				},
			},
			{
				ID:         "76979871",
				Title:      "Estrategia de 3-Bet desde la Ciega Grande",
				VideoURL:   "https://media.azpoker.app/clases/btn-bb/3bet-desde-bb.mp4",
				UploadDate: "2025-05-09",
				Duration:   "44:51",
				KeyLines: []models.KeyLine{
					{Title: "Polarizá el 3-bet", Content: "Desde la BB el 3-bet funciona mejor polarizado: valor arriba, manos con bloqueos y mala jugabilidad de call abajo."},
				},
				Hands: []models.Hand{
					{Hand: "A4s", Description: "3-bet clásico de farol: bloquea AA/AK y domina a los ases peores que pagan."},
				},
				Tables: []models.PreflopTable{
					{Name: "BB vs BTN — rangos de 3-bet", UploadDate: "2025-05-09", Link: "https://media.azpoker.app/tablas/bb-vs-btn-rangos-3bet.pdf"},
				},
			},
			{
				ID:         "92117122",
				Title:      "Juego Postflop en Guerra de Ciegas",
				VideoURL:   "https://media.azpoker.app/clases/btn-bb/postflop-guerra-ciegas.m3u8",
				UploadDate: "2025-02-14",
				Duration:   "58:27",
				KeyLines: []models.KeyLine{
					{Title: "Rangos anchos, pots raros", Content: "En guerra de ciegas los dos rangos son tan anchos que las segundas y terceras parejas suben de categoría. No sobrefoldees ríos."},
				},
				Hands: []models.Hand{
					{Hand: "T8o", Description: "Par de dieces sin kicker gana un pot grande: la mano es un bluff-catcher claro contra la línea agresiva del SB."},
				},
			},
		},
	},
	{
		Key: "juego-preflop",
		Classes: []models.Class{
			{
				ID:         "259411563",
				Title:      "Rangos de Apertura Preflop (RFI)",
				VideoURL:   "https://media.azpoker.app/clases/juego-preflop/rangos-apertura-rfi.mp4",
				Thumbnail:  "https://media.azpoker.app/thumbs/rangos-apertura-rfi.jpg",
				UploadDate: "2024-11-30",
				Duration:   "36:58",
				KeyLines: []models.KeyLine{
					{Title: "Memorizá poco, entendé mucho", Content: "Los rangos RFI se aprenden por estructura: qué clase de mano entra en cada posición y por qué, no casilla por casilla."},
				},
				Hands: []models.Hand{
					{Hand: "KTs", Description: "Apertura estándar desde MP que muchos foldean por miedo a dominación: el error está en el fold."},
				},
				Tables: []models.PreflopTable{
					{Name: "RFI 6-max por posición", UploadDate: "2024-11-30", Link: "https://media.azpoker.app/tablas/rfi-6max-posiciones.pdf"},
				},
			},
			{
				ID:         "135181955",
				Title:      "Conceptos de GTO Preflop",
				VideoURL:   "https://media.azpoker.app/clases/juego-preflop/conceptos-gto-preflop.mp4",
				UploadDate: "2024-09-17",
				Duration:   "51:20",
				KeyLines: []models.KeyLine{
					{Title: "GTO es el punto de partida", Content: "La solución de equilibrio marca la línea base; cada desviación del rival abre una desviación rentable nuestra."},
				},
				Hands: []models.Hand{
					{Hand: "JTs", Description: "Mano de frecuencias mixtas por excelencia: call y 3-bet son casi equivalentes en equilibrio."},
				},
			},
			{
				ID:         "211200483",
				Title:      "Ajustes Preflop vs Diferentes Tipos de Jugadores",
				VideoURL:   "https://media.azpoker.app/clases/juego-preflop/ajustes-preflop-vs-rivales.mp4",
				UploadDate: "2024-08-05",
				Duration:   "42:44",
				KeyLines: []models.KeyLine{
					{Title: "Etiquetá y ajustá", Content: "Tres etiquetas bastan en el preflop: nit, regular y recreacional. Cada una mueve el rango de 3-bet en una dirección distinta."},
				},
				Hands: []models.Hand{
					{Hand: "99", Description: "Contra un nit que solo 4-betea QQ+, el fold de 99 al 4-bet deja de ser exploitable y pasa a ser obligatorio."},
				},
			},
		},
	},
	{
		Key: "juego-postflop",
		Classes: []models.Class{
			{
				ID:         "49354231",
				Title:      "Introducción a la C-Bet",
				VideoURL:   "https://media.azpoker.app/clases/juego-postflop/introduccion-c-bet.mp4",
				Thumbnail:  "https://media.azpoker.app/thumbs/introduccion-c-bet.jpg",
				UploadDate: "2024-07-10",
				Duration:   "33:17",
				KeyLines: []models.KeyLine{
					{Title: "Tamaño según textura", Content: "Boards secos piden c-bet pequeña de rango; boards conectados piden apuestas grandes y selectivas."},
				},
				Hands: []models.Hand{
					{Hand: "AKo", Description: "C-bet de un tercio en Q72r: la mano cobra valor de las peores AK y niega equity a los overcards del rival."},
				},
				Filters: []models.FilterFile{
					{Name: "C-bet flop — oportunidades", UploadDate: "2024-07-10", Tracker: models.TrackerHoldemManager, DownloadLink: "https://media.azpoker.app/filtros/cbet-flop-oportunidades.hm3"},
				},
			},
			{
				ID:         "76979871",
				Title:      "Estrategias de Check-Raise",
				VideoURL:   "https://media.azpoker.app/clases/juego-postflop/estrategias-check-raise.mp4",
				UploadDate: "2024-07-14",
				Duration:   "47:02",
				KeyLines: []models.KeyLine{
					{Title: "El check-raise necesita plan", Content: "Subir el flop sin saber qué turn barrel quema dinero. Elegí faroles que mejoran a algo o bloquean la continuación."},
				},
				Hands: []models.Hand{
					{Hand: "65s", Description: "Check-raise con doble gutshot: doce outs efectivos y presión máxima sobre la c-bet pequeña."},
				},
			},
			{
				ID:         "148835803",
				Title:      "Juego en el Turn y River",
				VideoURL:   "https://media.azpoker.app/clases/juego-postflop/juego-turn-river.mp4",
				UploadDate: "2024-07-21",
				Duration:   "1:05:48",
				KeyLines: []models.KeyLine{
					{Title: "Las calles caras deciden la sesión", Content: "El grueso del dinero se mueve en turn y river. Una sola calle de valor fina por sesión paga el rake del mes."},
				},
				Hands: []models.Hand{
					{Hand: "QQ", Description: "Overpair en river con el frontdoor completado: pasamos de triple barrel a check-call y la lectura paga."},
				},
			},
		},
	},
}
