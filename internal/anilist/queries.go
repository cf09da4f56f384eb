package anilist

// GraphQL query shapes. One constant per logical operation; variables are
// supplied per call.

const queryPopular = `
query ($page: Int, $perPage: Int) {
  Page(page: $page, perPage: $perPage) {
    pageInfo { total currentPage lastPage hasNextPage perPage }
    media(type: ANIME, sort: POPULARITY_DESC) {
      id title { romaji english native }
      coverImage { large medium }
      description genres popularity status episodes season seasonYear
      studios { nodes { name } }
      averageScore startDate { year month day }
    }
  }
}`

const queryByGenre = `
query ($page: Int, $perPage: Int, $genre: String) {
  Page(page: $page, perPage: $perPage) {
    pageInfo { total currentPage lastPage hasNextPage perPage }
    media(type: ANIME, genre_in: [$genre], sort: POPULARITY_DESC) {
      id title { romaji english native }
      coverImage { large medium }
      description genres popularity status episodes season seasonYear
      studios { nodes { name } }
      averageScore startDate { year month day }
    }
  }
}`

const querySearch = `
query ($page: Int, $perPage: Int, $search: String) {
  Page(page: $page, perPage: $perPage) {
    pageInfo { total currentPage lastPage hasNextPage perPage }
    media(type: ANIME, search: $search, sort: POPULARITY_DESC) {
      id title { romaji english native }
      coverImage { large medium }
      description genres popularity status episodes season seasonYear
      studios { nodes { name } }
      averageScore startDate { year month day }
    }
  }
}`

const queryAiring = `
query ($page: Int, $perPage: Int) {
  Page(page: $page, perPage: $perPage) {
    pageInfo { total currentPage lastPage hasNextPage perPage }
    media(type: ANIME, status: RELEASING, sort: POPULARITY_DESC) {
      id title { romaji english native }
      coverImage { large medium }
      description genres popularity status episodes season seasonYear
      studios { nodes { name } }
      averageScore
      nextAiringEpisode { episode timeUntilAiring }
    }
  }
}`

const queryDetails = `
query ($id: Int) {
  Media(id: $id, type: ANIME) {
    id title { romaji english native }
    coverImage { large medium extraLarge } bannerImage
    description genres popularity status episodes duration
    season seasonYear studios { nodes { name } }
    averageScore meanScore startDate { year month day }
    endDate { year month day } source format
  }
}`

const queryGenres = `query { GenreCollection }`
