package sqlinline

const QInsertMeal = `--sql a7d2c90e-83f5-41b6-9c28-e64a0b5d17f2
insert into meals (id, user_id, timestamp, image_url, total_calories, total_protein, total_carbs, total_fat, created_at)
values ($1, $2, $3, $4, $5, $6, $7, $8, now())
returning created_at;
`

const QInsertFoodItem = `--sql c48e1b36-f90a-4d72-85c1-3ba67d20e9f4
insert into food_items (id, meal_id, name, calories, protein, carbs, fat, portion)
values ($1, $2, $3, $4, $5, $6, $7, $8);
`

const QSelectMealsByDate = `--sql 5d90f7a1-3c2e-4b68-a0d9-8e514cb7f623
select id, user_id, timestamp, coalesce(image_url, ''), total_calories, total_protein, total_carbs, total_fat, created_at
from meals
where user_id = $1
  and timestamp >= $2
  and timestamp < $3
order by timestamp desc;
`

const QSelectFoodItemsByMeals = `--sql 02b65e8d-91c7-4f30-bd4a-67f2a8e05c19
select id, meal_id, name, calories, protein, carbs, fat, portion
from food_items
where meal_id = any($1)
order by meal_id, id;
`

const QDeleteMeal = `--sql f1c09a54-7e82-4d16-b3f7-29d80c6ae5b1
delete from meals
where id = $1
  and user_id = $2;
`

const QCountMealsByUser = `--sql 740ad8f3-62b9-4ce5-91a0-d5e38f7c26b4
select count(*)
from meals
where user_id = $1;
`
