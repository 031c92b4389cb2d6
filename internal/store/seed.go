package store

import "github.com/bookvault/bookvault/internal/model"

// Genres lists the genre choices offered by the catalog UI.
var Genres = []string{
	"Fiction",
	"Romance",
	"Mystery",
	"Science Fiction",
	"Fantasy",
	"Thriller",
	"Historical Fiction",
	"Biography",
	"Self-Help",
	"Business",
	"Philosophy",
	"Poetry",
	"Drama",
	"Horror",
	"Adventure",
	"Coming-of-age Fiction",
	"Dystopian Fiction",
	"Gothic Fiction",
}

// SeedBooks returns the initial catalog data set. Each call returns a
// fresh slice, so stores never share seed records.
func SeedBooks() []model.Book {
	return []model.Book{
		{
			ID:            1,
			Title:         "The Great Gatsby",
			Author:        "F. Scott Fitzgerald",
			PublishedDate: "1925-04-10",
			Publisher:     "Charles Scribner's Sons",
			Genre:         "Fiction",
			ISBN:          "978-0-7432-7356-5",
			Pages:         180,
			Price:         12.99,
			Stock:         25,
			Description:   "A classic American novel set in the summer of 1922, following the life of Jay Gatsby and his obsession with Daisy Buchanan. The story explores themes of decadence, idealism, resistance to change, social upheaval, and excess, creating a portrait of the Jazz Age that has been described as a cautionary tale regarding the American Dream.",
			CoverImage:    "https://images.unsplash.com/photo-1544947950-fa07a98d237f?w=300&h=400&fit=crop",
		},
		{
			ID:            2,
			Title:         "To Kill a Mockingbird",
			Author:        "Harper Lee",
			PublishedDate: "1960-07-11",
			Publisher:     "J.B. Lippincott & Co.",
			Genre:         "Fiction",
			ISBN:          "978-0-06-112008-4",
			Pages:         324,
			Price:         14.99,
			Stock:         18,
			Description:   "A novel about racial injustice and childhood innocence in the American South during the 1930s. Through the eyes of Scout Finch, the story explores themes of moral growth, prejudice, and the loss of innocence in a society marked by inequality and injustice.",
			CoverImage:    "https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=300&h=400&fit=crop",
		},
		{
			ID:            3,
			Title:         "1984",
			Author:        "George Orwell",
			PublishedDate: "1949-06-08",
			Publisher:     "Secker & Warburg",
			Genre:         "Dystopian Fiction",
			ISBN:          "978-0-452-28423-4",
			Pages:         328,
			Price:         13.99,
			Stock:         32,
			Description:   "A dystopian social science fiction novel that explores the consequences of totalitarianism and mass surveillance. Set in Airstrip One, a province of the superstate Oceania, the story follows Winston Smith as he struggles against the oppressive regime of Big Brother.",
			CoverImage:    "https://images.unsplash.com/photo-1495640452828-3df6795cf69b?w=300&h=400&fit=crop",
		},
		{
			ID:            4,
			Title:         "Pride and Prejudice",
			Author:        "Jane Austen",
			PublishedDate: "1813-01-28",
			Publisher:     "T. Egerton",
			Genre:         "Romance",
			ISBN:          "978-0-14-143951-8",
			Pages:         432,
			Price:         11.99,
			Stock:         22,
			Description:   "A romantic novel of manners that follows the character development of Elizabeth Bennet, the dynamic protagonist who learns about the repercussions of hasty judgments and comes to appreciate the difference between superficial goodness and actual goodness.",
			CoverImage:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=300&h=400&fit=crop",
		},
		{
			ID:            5,
			Title:         "The Catcher in the Rye",
			Author:        "J.D. Salinger",
			PublishedDate: "1951-07-16",
			Publisher:     "Little, Brown and Company",
			Genre:         "Coming-of-age Fiction",
			ISBN:          "978-0-316-76948-0",
			Pages:         277,
			Price:         13.5,
			Stock:         15,
			Description:   "A controversial novel about teenage rebellion and alienation in post-war America. The story follows Holden Caulfield, a troubled teenager who has been expelled from prep school and wanders around New York City for several days before returning home.",
			CoverImage:    "https://images.unsplash.com/photo-1512820790803-83ca734da794?w=300&h=400&fit=crop",
		},
		{
			ID:            6,
			Title:         "Harry Potter and the Sorcerer's Stone",
			Author:        "J.K. Rowling",
			PublishedDate: "1997-06-26",
			Publisher:     "Bloomsbury",
			Genre:         "Fantasy",
			ISBN:          "978-0-439-70818-8",
			Pages:         309,
			Price:         15.99,
			Stock:         45,
			Description:   "The first book in the Harry Potter series, following a young wizard's journey at Hogwarts School of Witchcraft and Wizardry. Harry discovers his magical heritage and begins his adventure in the wizarding world while uncovering the truth about his parents' death.",
			CoverImage:    "https://images.unsplash.com/photo-1621351183012-e2f9972dd9bf?w=300&h=400&fit=crop",
		},
		{
			ID:            7,
			Title:         "The Lord of the Rings: The Fellowship of the Ring",
			Author:        "J.R.R. Tolkien",
			PublishedDate: "1954-07-29",
			Publisher:     "George Allen & Unwin",
			Genre:         "Fantasy",
			ISBN:          "978-0-547-92822-7",
			Pages:         423,
			Price:         16.99,
			Stock:         28,
			Description:   "The first volume of Tolkien's epic fantasy trilogy, following the hobbit Frodo Baggins as he sets out on a quest to destroy the One Ring. The story begins the legendary tale of courage, friendship, and sacrifice in Middle-earth.",
			CoverImage:    "https://images.unsplash.com/photo-1518373714866-3f1478910cc0?w=300&h=400&fit=crop",
		},
		{
			ID:            8,
			Title:         "The Alchemist",
			Author:        "Paulo Coelho",
			PublishedDate: "1988-01-01",
			Publisher:     "HarperCollins",
			Genre:         "Philosophy",
			ISBN:          "978-0-06-112241-5",
			Pages:         163,
			Price:         14.95,
			Stock:         35,
			Description:   "A philosophical novel about a young Andalusian shepherd who travels from Spain to the Egyptian desert in search of treasure. The story explores themes of destiny, dreams, and the importance of listening to one's heart.",
			CoverImage:    "https://images.unsplash.com/photo-1566093097221-ac51c9ba5dfe?w=300&h=400&fit=crop",
		},
		{
			ID:            9,
			Title:         "Brave New World",
			Author:        "Aldous Huxley",
			PublishedDate: "1932-08-01",
			Publisher:     "Chatto & Windus",
			Genre:         "Science Fiction",
			ISBN:          "978-0-06-085052-4",
			Pages:         311,
			Price:         13.99,
			Stock:         20,
			Description:   "A dystopian novel set in a futuristic World State, where citizens are environmentally engineered into an intelligence-based social hierarchy. The story explores themes of technology, conditioning, and the loss of individual freedom.",
			CoverImage:    "https://images.unsplash.com/photo-1592496431122-2349e0fbc666?w=300&h=400&fit=crop",
		},
		{
			ID:            10,
			Title:         "The Hobbit",
			Author:        "J.R.R. Tolkien",
			PublishedDate: "1937-09-21",
			Publisher:     "George Allen & Unwin",
			Genre:         "Fantasy",
			ISBN:          "978-0-547-92822-1",
			Pages:         366,
			Price:         14.99,
			Stock:         40,
			Description:   "The prelude to The Lord of the Rings, following Bilbo Baggins on an unexpected journey to the Lonely Mountain with a group of dwarves to reclaim their treasure from the dragon Smaug. A tale of adventure, courage, and personal growth.",
			CoverImage:    "https://images.unsplash.com/photo-1543002588-bfa74002ed7e?w=300&h=400&fit=crop",
		},
		{
			ID:            11,
			Title:         "Jane Eyre",
			Author:        "Charlotte Brontë",
			PublishedDate: "1847-10-16",
			Publisher:     "Smith, Elder & Co.",
			Genre:         "Gothic Fiction",
			ISBN:          "978-0-14-144114-6",
			Pages:         507,
			Price:         12.95,
			Stock:         16,
			Description:   "A bildungsroman following the experiences of the eponymous heroine, including her growth to adulthood and her love for Mr. Rochester. The novel revolutionized prose fiction by being the first to focus on the moral and spiritual development of its protagonist.",
			CoverImage:    "https://images.unsplash.com/photo-1589829085413-56de8ae18c73?w=300&h=400&fit=crop",
		},
		{
			ID:            12,
			Title:         "The Kite Runner",
			Author:        "Khaled Hosseini",
			PublishedDate: "2003-05-29",
			Publisher:     "Riverhead Books",
			Genre:         "Historical Fiction",
			ISBN:          "978-1-59448-000-3",
			Pages:         371,
			Price:         15.99,
			Stock:         24,
			Description:   "A story of friendship, guilt, and redemption set against the backdrop of Afghanistan's tumultuous history. The novel follows Amir as he seeks to atone for his childhood betrayal of his servant's son Hassan.",
			CoverImage:    "https://images.unsplash.com/photo-1606159068539-43f36b99d8ac?w=300&h=400&fit=crop",
		},
	}
}
